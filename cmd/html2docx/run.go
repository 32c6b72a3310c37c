package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	html2docx "github.com/tdelacour/go-html2docx"
	"github.com/tdelacour/go-html2docx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input file specified")
	ErrTooManyArgs      = errors.New("too many arguments")
	ErrReadInput        = errors.New("failed to read input file")
	ErrInvalidExtension = errors.New("input must have an .html, .htm, .md or .markdown extension")
	ErrInvalidTimeout   = errors.New("timeout must be positive")
	ErrWriteOutput      = errors.New("failed to write output file")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input html2docx.Input) (*html2docx.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*html2docx.Converter)(nil)

// run reads the input file, delegates to the conversion service, and writes
// the output atomically. No partial output file is ever left in place.
func run(ctx context.Context, positional []string, flags *cliFlags, conv Converter, out, errOut io.Writer) error {
	if len(positional) == 0 {
		return ErrNoInput
	}
	if len(positional) > 2 {
		return fmt.Errorf("%w: %d (want input and optional output)", ErrTooManyArgs, len(positional))
	}

	inputPath := positional[0]
	markdown, err := inputIsMarkdown(inputPath)
	if err != nil {
		return err
	}

	// Catches directories and missing paths with one consistent message;
	// ReadFile still guards against races and permission failures.
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s is not a regular file", ErrReadInput, inputPath)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	outputPath := replaceExtension(inputPath, ".docx")
	if len(positional) == 2 {
		outputPath = positional[1]
	}

	input := html2docx.Input{PDF: flags.pdf}
	if markdown {
		input.Markdown = string(content)
	} else {
		input.HTML = string(content)
	}

	if flags.verbose {
		fmt.Fprintf(errOut, "Converting %s...\n", inputPath)
	}

	result, err := conv.Convert(ctx, input)
	if err != nil {
		return err
	}

	if err := fileutil.AtomicWrite(outputPath, result.DOCX, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.quiet {
		fmt.Fprintf(out, "Created %s\n", outputPath)
	}

	if flags.pdf {
		pdfPath := replaceExtension(outputPath, ".pdf")
		if err := fileutil.AtomicWrite(pdfPath, result.PDF, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.quiet {
			fmt.Fprintf(out, "Created %s\n", pdfPath)
		}
	}

	return nil
}

// inputIsMarkdown reports whether the input file is Markdown, or fails when
// the extension is neither Markdown nor HTML.
func inputIsMarkdown(path string) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true, nil
	case ".html", ".htm":
		return false, nil
	}
	return false, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// replaceExtension swaps a path's extension.
func replaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
