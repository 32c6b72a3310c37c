package html2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput     = errors.New("input content cannot be empty")
	ErrAmbiguousInput = errors.New("provide either HTML or Markdown content, not both")
	ErrParse          = errors.New("input is not well-formed")
	ErrUnmappedStyle  = errors.New("no style mapping for element kind")
	ErrDocxBuild      = errors.New("document assembly failed")

	// Markdown front-end errors.
	ErrMarkdownConversion = errors.New("markdown conversion failed")

	// Style sheet validation errors.
	ErrInvalidStyleSheet = errors.New("invalid style sheet")
	ErrInvalidColor      = errors.New("invalid color value")
	ErrInvalidSize       = errors.New("invalid font size")
	ErrInvalidAlignment  = errors.New("invalid alignment")

	// PDF rendering errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
