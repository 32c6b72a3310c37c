package html2docx

import "time"

// Input contains conversion parameters.
// Exactly one of HTML or Markdown must be set.
type Input struct {
	HTML     string // HTML source (resume or cover letter page)
	Markdown string // Markdown source, converted through the same pipeline
	PDF      bool   // also render the source page to PDF
}

// ConvertResult contains conversion outputs.
type ConvertResult struct {
	DOCX []byte
	PDF  []byte // nil unless Input.PDF was set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styles  StyleSheet
	timeout time.Duration
}

// defaultTimeout bounds PDF rendering when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithStyleSheet sets the style mapping used for DOCX output.
// The sheet is validated by NewConverter.
func WithStyleSheet(s StyleSheet) Option {
	return func(c *Converter) {
		c.cfg.styles = s
	}
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2docx: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// withMarkdownConverter injects a markdown converter (tests).
func withMarkdownConverter(m markdownConverter) Option {
	return func(c *Converter) {
		c.mdConverter = m
	}
}

// withPDFRenderer injects a PDF renderer (tests).
func withPDFRenderer(r pdfRenderer) Option {
	return func(c *Converter) {
		c.pdfRenderer = r
	}
}
