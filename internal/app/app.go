// Package app runs one input-to-sitemap conversion.
package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/romangod6/sitemap-generator/internal/encoder"
	"github.com/romangod6/sitemap-generator/internal/reader"
	"github.com/romangod6/sitemap-generator/internal/sitemap"
)

// Logger is the subset of utils.GeneratorLogger used by Run.
type Logger interface {
	LogInfo(format string, v ...interface{})
	LogError(format string, v ...interface{})
	LogDebug(format string, v ...interface{})
}

type Config struct {
	InputPath  string
	OutputPath string
	Mode       encoder.Mode

	// LegacyExitCode makes a failed sitemap write a success, which is how
	// the tool historically behaved.
	LegacyExitCode bool
}

// Run reads cfg.InputPath and writes the sitemap to cfg.OutputPath. A
// failure is returned as an *ExitError.
func Run(cfg Config, logger Logger) error {
	runID := uuid.New()
	logger.LogDebug("run %s: reading URLs from %s", runID, cfg.InputPath)

	// An input that cannot be opened is reported and then treated as an
	// empty one. A failure after opening is fatal.
	urls, err := reader.ReadURLs(cfg.InputPath)
	if err != nil {
		logger.LogError("Error: %v", err)
		if !errors.Is(err, reader.ErrOpenInput) {
			return &ExitError{Code: 1, Err: fmt.Errorf("%w: %w", ErrReadInput, err)}
		}
	}
	if len(urls) == 0 {
		return &ExitError{Code: 1, Message: "No URLs found in the input file.", Err: ErrNoURLs}
	}

	logger.LogDebug("run %s: encoding %d URLs in %s mode", runID, len(urls), cfg.Mode)
	if err := sitemap.WriteFile(cfg.OutputPath, urls, cfg.Mode.Func()); err != nil {
		logger.LogError("Error: %v", err)
		if cfg.LegacyExitCode {
			return nil
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("%w: %w", ErrWriteSitemap, err)}
	}

	logger.LogDebug("run %s: wrote %d URLs to %s", runID, len(urls), cfg.OutputPath)
	return nil
}
