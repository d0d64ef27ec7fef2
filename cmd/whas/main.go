// Package main provides the entry point for the whas schema compiler CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/compile"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/export/fonto"
	"github.com/ParapluOU/whale-schema/export/xsd"
	"github.com/ParapluOU/whale-schema/internal/config"
	"github.com/ParapluOU/whale-schema/internal/loader"
	"github.com/ParapluOU/whale-schema/model"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "whas: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("whas", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		fontoFlag    = fs.Bool("fonto", true, "emit the downstream JSON artifact")
		fontoVersion = fs.String("fonto-version", "", "downstream-runtime version tag (e.g. 8.8.0)")
		xsdFlag      = fs.Bool("xsd", true, "emit the XSD artifact")
		outputDir    = fs.String("output-dir", ".", "destination directory for emitted artifacts")
		configPath   = fs.String("config", "", "path to a .whasrc.jsonc file supplying defaults")
		logLevel     = fs.String("log-level", "info", "log level: error|warn|info|debug")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: whas [options] <root.whas>\n\n")
		fmt.Fprintf(os.Stderr, "Compiles a WHAS document grammar into XSD and/or downstream JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		fs.Usage()
		return fmt.Errorf("parse flags: %w", err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one root .whas file, got %d", fs.NArg())
	}
	entryPath := fs.Arg(0)

	settings := config.Default()
	if *configPath != "" {
		file, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		settings = settings.Apply(file.Options()...)
	}

	// Flags win over the config file: re-apply only the ones the user
	// actually passed on the command line, leaving config-file values in
	// place for everything else.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fonto":
			settings = settings.Apply(config.WithFonto(*fontoFlag))
		case "fonto-version":
			settings = settings.Apply(config.WithFontoVersion(*fontoVersion))
		case "xsd":
			settings = settings.Apply(config.WithXSD(*xsdFlag))
		case "output-dir":
			settings = settings.Apply(config.WithOutputDir(*outputDir))
		case "log-level":
			settings = settings.Apply(config.WithLogLevel(*logLevel))
		}
	})

	logger, err := setupLogger(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	ctx := context.Background()
	schema, res, err := compileSchema(ctx, entryPath, logger)
	if err != nil {
		return err
	}
	if !res.OK() {
		return reportFailure(res)
	}

	if err := os.MkdirAll(settings.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", settings.OutputDir, err)
	}

	if settings.XSD {
		outPath := filepath.Join(settings.OutputDir, xsdArtifactName(entryPath))
		if err := writeXSD(ctx, outPath, schema, logger); err != nil {
			return err
		}
	}

	if settings.Fonto {
		outPath := filepath.Join(settings.OutputDir, "fonto.schema.json")
		if err := writeFonto(ctx, outPath, schema, settings.FontoVersion, logger); err != nil {
			return err
		}
	}

	return nil
}

// compileSchema loads the entry file and every file it transitively
// imports, then compiles the merged AST into a Schema. Load and compile
// diagnostics are merged into a single Result so the caller sees every
// issue, not just the first failure.
func compileSchema(ctx context.Context, entryPath string, logger *slog.Logger) (*model.Schema, diag.Result, error) {
	mgr := loader.NewManager(loader.WithLogger(logger))
	defer mgr.Close()

	_, loadRes, err := mgr.Load(ctx, entryPath)
	if err != nil {
		return nil, diag.Result{}, fmt.Errorf("load %q: %w", entryPath, err)
	}

	units := mgr.Units()
	models := make([]*ast.Model, 0, len(units))
	for _, u := range units {
		models = append(models, u.Model)
	}

	schema, compileRes := compile.Compile(ctx, models, compile.WithLogger(logger))

	collector := diag.NewCollectorUnlimited()
	collector.Merge(loadRes)
	collector.Merge(compileRes)

	return schema, collector.Result(), nil
}

func reportFailure(res diag.Result) error {
	renderer := diag.NewRenderer()
	issues := res.IssuesAtLeastAsSevereAsSlice(diag.Error)
	if len(issues) == 0 {
		return fmt.Errorf("compilation failed")
	}
	return fmt.Errorf("%s", renderer.FormatIssue(issues[0]))
}

func xsdArtifactName(entryPath string) string {
	base := filepath.Base(entryPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".xsd"
}

func writeXSD(ctx context.Context, path string, schema *model.Schema, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	if _, err := xsd.Write(ctx, f, schema, xsd.WithLogger(logger)); err != nil {
		return fmt.Errorf("export xsd to %q: %w", path, err)
	}
	return nil
}

func writeFonto(ctx context.Context, path string, schema *model.Schema, version string, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	opts := []fonto.Option{fonto.WithLogger(logger)}
	if version != "" {
		v, err := fonto.ParseVersion(version)
		if err != nil {
			return err
		}
		opts = append(opts, fonto.WithVersion(v))
	}

	if _, err := fonto.Write(ctx, f, schema, opts...); err != nil {
		return fmt.Errorf("export fonto json to %q: %w", path, err)
	}
	return nil
}

func setupLogger(level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch level {
	case "error":
		slogLevel = slog.LevelError
	case "warn":
		slogLevel = slog.LevelWarn
	case "info":
		slogLevel = slog.LevelInfo
	case "debug":
		slogLevel = slog.LevelDebug
	default:
		return nil, fmt.Errorf("invalid log level: %q", level)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), nil
}
