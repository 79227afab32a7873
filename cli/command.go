package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/thanhnguyen2187/asset-savior/uasset"
	"github.com/thanhnguyen2187/asset-savior/uasset/ucompress"
	"github.com/thanhnguyen2187/asset-savior/uasset/ucontainer"
	"github.com/thanhnguyen2187/asset-savior/ui"
)

type (
	// Package is a parsed package with the bytes it was read from.
	Package struct {
		Container *ucontainer.Container
		Asset     []byte
		Bulk      []byte
		BulkPath  string
	}
	// VerifyReport says whether a package re-writes to identical bytes.
	VerifyReport struct {
		AssetIdentical bool
		BulkIdentical  bool
		Fallbacks      map[int]error
	}
)

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// BulkPath returns the explicit bulk path, or the .uexp sibling of from when
// it exists.
func BulkPath(from string, explicit string) string {
	if explicit != "" {
		return explicit
	}
	sibling := strings.TrimSuffix(from, filepath.Ext(from)) + ".uexp"
	if CheckExistence(sibling) {
		return sibling
	}
	return ""
}

func OpenPackage(config Config, logger logrus.FieldLogger, args PackageArgs) (*Package, error) {
	engine, err := config.EngineVersion(args.Engine)
	if err != nil {
		return nil, err
	}
	asset, err := os.ReadFile(args.From)
	if err != nil {
		return nil, errors.Wrapf(err, `cli.OpenPackage error reading "%s"`, args.From)
	}
	if !uasset.IsAssetFile(asset) {
		return nil, errors.Errorf(`cli.OpenPackage error: "%s" is not a package`, args.From)
	}

	pkg := &Package{Asset: asset, BulkPath: BulkPath(args.From, args.Bulk)}
	logger = logger.WithField("asset", args.From)
	if pkg.BulkPath == "" {
		pkg.Container, err = ucontainer.Open(bytes.NewReader(asset), nil, engine, ucontainer.WithLogger(logger))
	} else {
		if pkg.Bulk, err = os.ReadFile(pkg.BulkPath); err != nil {
			return nil, errors.Wrapf(err, `cli.OpenPackage error reading "%s"`, pkg.BulkPath)
		}
		pkg.Container, err = ucontainer.Open(
			bytes.NewReader(asset), bytes.NewReader(pkg.Bulk), engine,
			ucontainer.WithLogger(logger.WithField("bulk", pkg.BulkPath)),
		)
	}
	if err != nil {
		return nil, errors.Wrapf(err, `cli.OpenPackage error parsing "%s"`, args.From)
	}
	return pkg, nil
}

func RunDump(config Config, logger logrus.FieldLogger, cmd DumpCmd) error {
	if CheckExistence(cmd.To) && !cmd.Force {
		return errors.Errorf(`destination "%s" exists, pass --force to overwrite it`, cmd.To)
	}
	pkg, err := OpenPackage(config, logger, cmd.PackageArgs)
	if err != nil {
		return err
	}
	bs, err := json.MarshalIndent(uasset.ToOrderedMap(pkg.Container), "", "  ")
	if err != nil {
		return errors.Wrap(err, "cli.RunDump error marshalling package")
	}
	if err := os.WriteFile(cmd.To, bs, 0644); err != nil {
		return errors.Wrapf(err, `cli.RunDump error writing "%s"`, cmd.To)
	}
	logger.WithFields(logrus.Fields{
		"from":    cmd.From,
		"to":      cmd.To,
		"exports": len(pkg.Container.Exports),
	}).Info("dumped package")
	return nil
}

// Verify re-writes pkg and compares the result with the bytes it was read
// from.
func Verify(pkg *Package) (VerifyReport, error) {
	report := VerifyReport{Fallbacks: pkg.Container.Fallbacks}
	asset := bytes.Buffer{}
	var err error
	if pkg.Container.EventDriven() {
		bulk := bytes.Buffer{}
		err = pkg.Container.Write(&asset, &bulk)
		report.BulkIdentical = bytes.Equal(bulk.Bytes(), pkg.Bulk)
	} else {
		err = pkg.Container.Write(&asset, nil)
		report.BulkIdentical = true
	}
	if err != nil {
		return report, errors.Wrap(err, "cli.Verify error writing package")
	}
	report.AssetIdentical = bytes.Equal(asset.Bytes(), pkg.Asset)
	return report, nil
}

func RunVerify(config Config, logger logrus.FieldLogger, cmd VerifyCmd) error {
	pkg, err := OpenPackage(config, logger, cmd.PackageArgs)
	if err != nil {
		return err
	}
	report, err := Verify(pkg)
	if err != nil {
		return err
	}
	for index, fallback := range report.Fallbacks {
		logger.WithFields(logrus.Fields{"export": index, "error": fallback}).Warn("export kept as raw bytes")
	}
	entry := logger.WithFields(logrus.Fields{
		"from":            cmd.From,
		"asset_identical": report.AssetIdentical,
		"bulk_identical":  report.BulkIdentical,
		"fallbacks":       len(report.Fallbacks),
	})
	if !report.AssetIdentical || !report.BulkIdentical {
		entry.Error("re-written package differs")
		return errors.Errorf(`"%s" does not round-trip`, cmd.From)
	}
	entry.Info("package round-trips")
	return nil
}

func RunDecompress(logger logrus.FieldLogger, cmd DecompressCmd) error {
	if CheckExistence(cmd.To) && !cmd.Force {
		return errors.Errorf(`destination "%s" exists, pass --force to overwrite it`, cmd.To)
	}
	compressed, err := os.ReadFile(cmd.From)
	if err != nil {
		return errors.Wrapf(err, `cli.RunDecompress error reading "%s"`, cmd.From)
	}
	bs, err := ucompress.Decompress(ucompress.ParseMethod(cmd.Method), compressed, cmd.Size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cmd.To, bs, 0644); err != nil {
		return errors.Wrapf(err, `cli.RunDecompress error writing "%s"`, cmd.To)
	}
	logger.WithFields(logrus.Fields{"method": cmd.Method, "size": cmd.Size}).Info("decompressed block")
	return nil
}

func RunInteractive(config Config, logger logrus.FieldLogger, cmd InteractiveCmd) error {
	pkg, err := OpenPackage(config, logger, cmd.PackageArgs)
	if err != nil {
		return err
	}
	return ui.Start(cmd.From, pkg.Container)
}
