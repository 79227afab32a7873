package ucontainer

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/thanhnguyen2187/asset-savior/uasset/uexport"
)

// WithLogger sets where decode fallbacks are reported.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithScriptCodec decodes struct bytecode instead of keeping it raw.
func WithScriptCodec(codec uexport.ScriptCodec) Option {
	return func(c *Container) {
		c.scriptCodec = codec
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
