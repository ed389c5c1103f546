package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/romangod6/sitemap-generator/config"
	"github.com/romangod6/sitemap-generator/internal/app"
	"github.com/romangod6/sitemap-generator/internal/utils"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr); err != nil {
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads the configuration and performs one conversion.
// Diagnostics go to stderr.
func run(prog string, args []string, stderr io.Writer) error {
	usage := fmt.Sprintf("Usage: %s <input_file> <output_file>", prog)

	flags := config.NewFlagSet(prog)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &app.ExitError{Code: 1, Err: fmt.Errorf("%w: %w", app.ErrUsage, err)}
	}
	if flags.NArg() != 2 {
		return &app.ExitError{Code: 1, Message: usage, Err: app.ErrUsage}
	}

	cfg, err := config.LoadConfig(flags)
	if err != nil {
		return &app.ExitError{Code: 1, Message: fmt.Sprintf("Failed to load config: %v", err), Err: err}
	}

	// Both were validated by LoadConfig.
	level, _ := cfg.LogLevel()
	mode, _ := cfg.EncodingMode()

	logger, err := utils.NewGeneratorLogger(stderr, level, cfg.Log.File)
	if err != nil {
		return &app.ExitError{Code: 1, Message: fmt.Sprintf("Failed to initialize logger: %v", err), Err: err}
	}
	defer logger.Close()

	return app.Run(app.Config{
		InputPath:      flags.Arg(0),
		OutputPath:     flags.Arg(1),
		Mode:           mode,
		LegacyExitCode: cfg.Output.LegacyExitCode,
	}, logger)
}
