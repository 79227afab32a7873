package cli

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/thanhnguyen2187/asset-savior/uasset/uversion"
)

type Config struct {
	// Engine is used for unversioned packages, e.g. "4.18".
	Engine   string `toml:"engine"`
	LogLevel string `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{LogLevel: logrus.InfoLevel.String()}
}

// LoadConfig reads a TOML file over the defaults. An empty path yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, `cli.LoadConfig error reading "%s"`, path)
	}
	if err := toml.Unmarshal(bs, &config); err != nil {
		return config, errors.Wrapf(err, `cli.LoadConfig error parsing "%s"`, path)
	}
	return config, nil
}

// EngineVersion picks the flag value over the configured one.
func (c Config) EngineVersion(flag string) (uversion.EngineVersion, error) {
	value := flag
	if value == "" {
		value = c.Engine
	}
	if value == "" {
		return uversion.EngineUnknown, nil
	}
	return uversion.ParseEngineVersion(value)
}

func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, `cli.Config.Logger error parsing level "%s"`, c.LogLevel)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}
