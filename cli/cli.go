package cli

import (
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"
)

type (
	Args struct {
		Config      string          `help:"path to a TOML config file" placeholder:"FILE"`
		LogLevel    string          `arg:"--log-level" help:"overrides log_level of the config" placeholder:"LEVEL"`
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"write a package as JSON"`
		Verify      *VerifyCmd      `arg:"subcommand:verify" help:"parse and re-write a package, then compare the bytes"`
		Decompress  *DecompressCmd  `arg:"subcommand:decompress" help:"inflate a compressed block"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the exports of a package"`
	}
	// PackageArgs locate a package on disk. Bulk defaults to the .uexp file
	// next to From when one exists.
	PackageArgs struct {
		From   string `arg:"required" help:"path to the .uasset file" placeholder:"FILE"`
		Bulk   string `help:"path to the .uexp file" placeholder:"FILE"`
		Engine string `help:"engine version of unversioned packages" placeholder:"4.18"`
	}
	DumpCmd struct {
		PackageArgs
		To    string `arg:"required" help:"path to the JSON output" placeholder:"FILE"`
		Force bool   `help:"overwrite the destination file"`
	}
	VerifyCmd struct {
		PackageArgs
	}
	DecompressCmd struct {
		From   string `arg:"required" help:"path to the compressed block" placeholder:"FILE"`
		To     string `arg:"required" help:"path to the output" placeholder:"FILE"`
		Method string `arg:"required" help:"None, Zlib, Gzip or Zstd" placeholder:"METHOD"`
		Size   int    `arg:"required" help:"decompressed size in bytes" placeholder:"N"`
		Force  bool   `help:"overwrite the destination file"`
	}
	InteractiveCmd struct {
		PackageArgs
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Inspect Unreal Engine 4 packages in the command line.\n",
			"Reads .uasset (and .uexp) files, dumps them as JSON, and checks",
			"that they survive a parse and re-write unchanged.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	config, err := LoadConfig(args.Config)
	if err != nil {
		logrus.Fatal(err)
	}
	if args.LogLevel != "" {
		config.LogLevel = args.LogLevel
	}
	logger, err := config.Logger()
	if err != nil {
		logrus.Fatal(err)
	}

	switch {
	case args.Dump != nil:
		err = RunDump(config, logger, *args.Dump)
	case args.Verify != nil:
		err = RunVerify(config, logger, *args.Verify)
	case args.Decompress != nil:
		err = RunDecompress(logger, *args.Decompress)
	case args.Interactive != nil:
		err = RunInteractive(config, logger, *args.Interactive)
	default:
		parser.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		logger.Fatal(err)
	}
}
