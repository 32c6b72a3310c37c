package main

import (
	"errors"
	"os"

	html2docx "github.com/tdelacour/go-html2docx"
	"github.com/tdelacour/go-html2docx/internal/config"
)

// Exit codes for the html2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, styles, or input content
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors (PDF mode)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, html2docx.ErrBrowserConnect) ||
		errors.Is(err, html2docx.ErrPageCreate) ||
		errors.Is(err, html2docx.ErrPageLoad) ||
		errors.Is(err, html2docx.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, config.ErrConfigNotFound) {
		return ExitIO
	}

	// Usage/content/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrUnknownHeading) ||
		errors.Is(err, html2docx.ErrEmptyInput) ||
		errors.Is(err, html2docx.ErrAmbiguousInput) ||
		errors.Is(err, html2docx.ErrParse) ||
		errors.Is(err, html2docx.ErrUnmappedStyle) ||
		errors.Is(err, html2docx.ErrMarkdownConversion) ||
		errors.Is(err, html2docx.ErrInvalidStyleSheet) ||
		errors.Is(err, html2docx.ErrInvalidColor) ||
		errors.Is(err, html2docx.ErrInvalidSize) ||
		errors.Is(err, html2docx.ErrInvalidAlignment) {
		return ExitUsage
	}

	return ExitGeneral
}
