package html2docx

// Notes:
// - DOCX assertions unzip the result and substring-match the XML parts;
//   the docml package owns the detailed structural tests.
// - PDF and Markdown stages are exercised through injected fakes so the
//   suite needs neither a browser nor network access.

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test fixtures
// ---------------------------------------------------------------------------

// resumeHTML is a trimmed resume page exercising every supported element.
const resumeHTML = `<html>
<head><title>Jane Doe</title><style>h1 { color: teal; }</style></head>
<body>
<div class="container">
  <h1>Jane Doe</h1>
  <div class="contact"><span>jane@example.com</span> | <a href="https://janedoe.dev">janedoe.dev</a></div>
  <h2>Summary</h2>
  <p>Experienced engineer.</p>
  <h2>Skills</h2>
  <ul>
    <li>Skill A</li>
    <li>Skill B</li>
  </ul>
</div>
</body>
</html>`

type fakePDFRenderer struct {
	pdf       []byte
	err       error
	rendered  int
	closed    int
	lastInput string
}

func (f *fakePDFRenderer) ToPDF(_ context.Context, htmlContent string) ([]byte, error) {
	f.rendered++
	f.lastInput = htmlContent
	return f.pdf, f.err
}

func (f *fakePDFRenderer) Close() error {
	f.closed++
	return nil
}

type fakeMarkdownConverter struct {
	html string
	err  error
}

func (f *fakeMarkdownConverter) ToHTML(_ context.Context, _ string) (string, error) {
	return f.html, f.err
}

// documentXML extracts word/document.xml from a DOCX archive.
func documentXML(t *testing.T, docx []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening document.xml: %v", err)
		}
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading document.xml: %v", err)
		}
		return string(content)
	}
	t.Fatal("archive has no word/document.xml")
	return ""
}

// ---------------------------------------------------------------------------
// TestConvert_Resume - End-to-end HTML to DOCX
// ---------------------------------------------------------------------------

func TestConvert_Resume(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	result, err := conv.Convert(context.Background(), Input{HTML: resumeHTML})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.PDF != nil {
		t.Error("PDF produced without being requested")
	}

	doc := documentXML(t, result.DOCX)
	for _, want := range []string{
		`w:val="Heading1"`,
		`w:val="Heading2"`,
		`w:val="ListParagraph"`,
		`w:val="Hyperlink"`,
		`r:id="rId3"`,
		">Jane Doe</w:t>",
		">Experienced engineer.</w:t>",
		">Skill A</w:t>",
		">Skill B</w:t>",
		">janedoe.dev</w:t>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}

	// Document order is input order.
	positions := []string{">Jane Doe<", ">Summary<", ">Experienced engineer.<", ">Skills<", ">Skill A<", ">Skill B<"}
	last := -1
	for _, p := range positions {
		idx := strings.Index(doc, p)
		if idx < 0 {
			t.Fatalf("document.xml missing %q", p)
		}
		if idx < last {
			t.Errorf("%q appears out of order", p)
		}
		last = idx
	}
}

// ---------------------------------------------------------------------------
// TestConvert_Idempotence
// ---------------------------------------------------------------------------

func TestConvert_Idempotence(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	first, err := conv.Convert(context.Background(), Input{HTML: resumeHTML})
	if err != nil {
		t.Fatalf("first Convert() error = %v", err)
	}
	second, err := conv.Convert(context.Background(), Input{HTML: resumeHTML})
	if err != nil {
		t.Fatalf("second Convert() error = %v", err)
	}

	if !bytes.Equal(first.DOCX, second.DOCX) {
		t.Error("repeated conversion of identical input produced different bytes")
	}
}

// ---------------------------------------------------------------------------
// TestConvert_InputValidation
// ---------------------------------------------------------------------------

func TestConvert_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty input",
			input:   Input{},
			wantErr: ErrEmptyInput,
		},
		{
			name:    "both sources set",
			input:   Input{HTML: "<p>x</p>", Markdown: "# x"},
			wantErr: ErrAmbiguousInput,
		},
	}

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert_ParseErrors
// ---------------------------------------------------------------------------

func TestConvert_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
	}{
		{name: "unclosed element", html: "<p>never closed"},
		{name: "mismatched nesting", html: "<p><strong>x</p></strong>"},
		{name: "unsupported element", html: "<table><tr><td>x</td></tr></table>"},
	}

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := conv.Convert(context.Background(), Input{HTML: tt.html})
			if !errors.Is(err, ErrParse) {
				t.Errorf("Convert() error = %v, want ErrParse", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert_UnmappedStyle
// ---------------------------------------------------------------------------

func TestConvert_UnmappedStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*StyleSheet)
		html   string
	}{
		{
			name:   "heading level without mapping",
			modify: func(s *StyleSheet) { s.Heading[2] = nil },
			html:   "<h3>Projects</h3>",
		},
		{
			name:   "paragraph without mapping",
			modify: func(s *StyleSheet) { s.Paragraph = nil },
			html:   "<p>text</p>",
		},
		{
			name:   "list item without mapping",
			modify: func(s *StyleSheet) { s.ListItem = nil },
			html:   "<ul><li>x</li></ul>",
		},
		{
			name:   "hyperlink without mapping",
			modify: func(s *StyleSheet) { s.Hyperlink = nil },
			html:   `<p><a href="https://example.com">x</a></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sheet := DefaultStyleSheet()
			tt.modify(&sheet)

			conv, err := NewConverter(WithStyleSheet(sheet))
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			t.Cleanup(func() { _ = conv.Close() })

			_, err = conv.Convert(context.Background(), Input{HTML: tt.html})
			if !errors.Is(err, ErrUnmappedStyle) {
				t.Errorf("Convert() error = %v, want ErrUnmappedStyle", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert_UnmappedStyleSkipsNothing
// ---------------------------------------------------------------------------

// An unmapped kind that the input never uses must not fail the conversion.
func TestConvert_UnmappedStyleSkipsNothing(t *testing.T) {
	t.Parallel()

	sheet := DefaultStyleSheet()
	sheet.Heading[5] = nil
	sheet.Hyperlink = nil

	conv, err := NewConverter(WithStyleSheet(sheet))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	result, err := conv.Convert(context.Background(), Input{HTML: "<h1>Title</h1><p>body</p>"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(result.DOCX) == 0 {
		t.Error("Convert() returned empty DOCX")
	}
}

// ---------------------------------------------------------------------------
// TestConvert_Markdown
// ---------------------------------------------------------------------------

func TestConvert_Markdown(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	md := "# Jane Doe\n\nExperienced engineer.\n\n- Skill A\n- Skill B\n"
	html := "<h1>Jane Doe</h1><p>Experienced engineer.</p><ul><li>Skill A</li><li>Skill B</li></ul>"

	fromMD, err := conv.Convert(context.Background(), Input{Markdown: md})
	if err != nil {
		t.Fatalf("Convert(markdown) error = %v", err)
	}
	fromHTML, err := conv.Convert(context.Background(), Input{HTML: html})
	if err != nil {
		t.Fatalf("Convert(html) error = %v", err)
	}

	if !bytes.Equal(fromMD.DOCX, fromHTML.DOCX) {
		t.Error("equivalent Markdown and HTML inputs produced different documents")
	}
}

func TestConvert_MarkdownConverterFailure(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("renderer exploded")
	conv, err := NewConverter(withMarkdownConverter(&fakeMarkdownConverter{err: wantErr}))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	_, err = conv.Convert(context.Background(), Input{Markdown: "# x"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Convert() error = %v, want %v", err, wantErr)
	}
}

// ---------------------------------------------------------------------------
// TestConvert_PDF
// ---------------------------------------------------------------------------

func TestConvert_PDF(t *testing.T) {
	t.Parallel()

	fake := &fakePDFRenderer{pdf: []byte("%PDF-1.7 fake")}
	conv, err := NewConverter(withPDFRenderer(fake))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	result, err := conv.Convert(context.Background(), Input{HTML: "<p>hello</p>", PDF: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !bytes.Equal(result.PDF, fake.pdf) {
		t.Errorf("ConvertResult.PDF = %q, want %q", result.PDF, fake.pdf)
	}
	if fake.rendered != 1 {
		t.Errorf("renderer called %d times, want 1", fake.rendered)
	}
	if fake.lastInput != "<p>hello</p>" {
		t.Errorf("renderer received %q, want the original HTML", fake.lastInput)
	}

	if err := conv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if fake.closed != 1 {
		t.Errorf("renderer closed %d times, want 1", fake.closed)
	}
}

func TestConvert_PDFRendererFailure(t *testing.T) {
	t.Parallel()

	wantErr := ErrPDFGeneration
	fake := &fakePDFRenderer{err: wantErr}
	conv, err := NewConverter(withPDFRenderer(fake))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	_, err = conv.Convert(context.Background(), Input{HTML: "<p>x</p>", PDF: true})
	if !errors.Is(err, wantErr) {
		t.Errorf("Convert() error = %v, want %v", err, wantErr)
	}
}

// ---------------------------------------------------------------------------
// TestConvert_ContextCancellation
// ---------------------------------------------------------------------------

func TestConvert_ContextCancellation(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = conv.Convert(ctx, Input{HTML: resumeHTML})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestNewConverter
// ---------------------------------------------------------------------------

func TestNewConverter_InvalidStyleSheet(t *testing.T) {
	t.Parallel()

	sheet := DefaultStyleSheet()
	sheet.Paragraph.Run.Color = "not-a-color"

	_, err := NewConverter(WithStyleSheet(sheet))
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("NewConverter() error = %v, want ErrInvalidColor", err)
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}
