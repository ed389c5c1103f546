package app

import (
	"errors"
	"fmt"
)

var (
	ErrUsage        = errors.New("invalid arguments")
	ErrNoURLs       = errors.New("no URLs found in the input file")
	ErrReadInput    = errors.New("input read failed")
	ErrWriteSitemap = errors.New("failed to write sitemap")
)

// ExitError carries a process exit code out of Run. Message, when set, is
// meant for the diagnostic stream; Err is the underlying cause.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
