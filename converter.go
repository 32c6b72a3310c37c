package html2docx

import (
	"context"
	"fmt"

	"github.com/tdelacour/go-html2docx/internal/docml"
	"github.com/tdelacour/go-html2docx/internal/htmldoc"
)

// Compile-time interface implementation checks.
var (
	_ markdownConverter = (*goldmarkConverter)(nil)
	_ pdfRenderer       = (*rodRenderer)(nil)
)

// markdownConverter abstracts Markdown to HTML conversion.
type markdownConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// pdfRenderer abstracts HTML to PDF rendering.
type pdfRenderer interface {
	ToPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Converter runs the markup-to-document pipeline. Create one with
// NewConverter, call Convert per document, and Close when done.
//
// The conversion is a pure function of (input content, style sheet):
// repeated runs over the same input produce byte-identical output.
type Converter struct {
	cfg         converterConfig
	mdConverter markdownConverter
	pdfRenderer pdfRenderer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g. WithStyleSheet, WithTimeout).
// Returns an error when the style sheet does not validate.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			styles:  DefaultStyleSheet(),
			timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.styles.Validate(); err != nil {
		return nil, err
	}

	if c.mdConverter == nil {
		c.mdConverter = newGoldmarkConverter()
	}
	if c.pdfRenderer == nil {
		c.pdfRenderer = newRodRenderer(c.cfg.timeout)
	}

	return c, nil
}

// Convert parses the input, resolves each element's style against the style
// mapping, and assembles the output document. The context is used for
// cancellation. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	htmlContent := input.HTML
	if input.Markdown != "" {
		htmlContent, err = c.mdConverter.ToHTML(ctx, input.Markdown)
		if err != nil {
			return nil, err
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := htmldoc.ParseString(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	builder := docml.NewBuilder(styleDefs(c.cfg.styles))
	if err := appendBlocks(builder, doc.Blocks, 0, c.cfg.styles); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	docxBytes, err := builder.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocxBuild, err)
	}

	res := &ConvertResult{DOCX: docxBytes}

	if input.PDF {
		pdfBytes, err := c.pdfRenderer.ToPDF(ctx, htmlContent)
		if err != nil {
			return nil, err
		}
		res.PDF = pdfBytes
	}

	return res, nil
}

// Close releases resources (the headless browser, if one was started).
func (c *Converter) Close() error {
	if c.pdfRenderer != nil {
		return c.pdfRenderer.Close()
	}
	return nil
}

// validateInput checks that exactly one content source is present.
func validateInput(input Input) error {
	if input.HTML == "" && input.Markdown == "" {
		return ErrEmptyInput
	}
	if input.HTML != "" && input.Markdown != "" {
		return ErrAmbiguousInput
	}
	return nil
}

// appendBlocks walks blocks in document order, resolving each kind against
// the style mapping and appending a formatted block to the builder. Order is
// preserved exactly; sibling elements are never merged.
func appendBlocks(b *docml.Builder, blocks []*htmldoc.Block, depth int, styles StyleSheet) error {
	for _, blk := range blocks {
		switch blk.Kind {
		case htmldoc.KindHeading:
			if _, err := styles.headingStyle(blk.Level); err != nil {
				return err
			}
			runs, err := spanRuns(blk.Spans, styles)
			if err != nil {
				return err
			}
			b.AddHeading(blk.Level, runs)

		case htmldoc.KindParagraph:
			if styles.Paragraph == nil {
				return fmt.Errorf("%w: paragraph", ErrUnmappedStyle)
			}
			runs, err := spanRuns(blk.Spans, styles)
			if err != nil {
				return err
			}
			b.AddParagraph(runs)

		case htmldoc.KindList:
			if err := appendList(b, blk, depth, styles); err != nil {
				return err
			}

		default:
			return fmt.Errorf("%w: %s", ErrUnmappedStyle, blk.Kind)
		}
	}
	return nil
}

// appendList flattens a list block into list-item paragraphs; nested lists
// recurse with an increased depth.
func appendList(b *docml.Builder, list *htmldoc.Block, depth int, styles StyleSheet) error {
	if styles.ListItem == nil {
		return fmt.Errorf("%w: list item", ErrUnmappedStyle)
	}
	lt := docml.ListBullet
	if list.List == htmldoc.ListNumber {
		lt = docml.ListNumber
	}
	for _, item := range list.Items {
		runs, err := spanRuns(item.Spans, styles)
		if err != nil {
			return err
		}
		b.AddListItem(lt, depth, runs)
		for _, nested := range item.Items {
			if err := appendList(b, nested, depth+1, styles); err != nil {
				return err
			}
		}
	}
	return nil
}

// spanRuns converts inline spans to document runs. Hyperlink text requires a
// hyperlink style mapping.
func spanRuns(spans []htmldoc.Span, styles StyleSheet) ([]docml.Run, error) {
	runs := make([]docml.Run, 0, len(spans))
	for _, s := range spans {
		if s.Href != "" && styles.Hyperlink == nil {
			return nil, fmt.Errorf("%w: hyperlink", ErrUnmappedStyle)
		}
		runs = append(runs, docml.Run{
			Text:   s.Text,
			Bold:   s.Bold,
			Italic: s.Italic,
			Href:   s.Href,
			Break:  s.HardBreak,
		})
	}
	return runs, nil
}

// styleDefs maps the public style sheet onto the document's style table.
// Heading styles are emitted only for mapped levels, so an output document
// never defines a style the mapping does not cover.
func styleDefs(s StyleSheet) []docml.StyleDef {
	var defs []docml.StyleDef

	font := func(r RunStyle) string {
		if r.Font != "" {
			return r.Font
		}
		return s.Font
	}

	if p := s.Paragraph; p != nil {
		defs = append(defs, docml.StyleDef{
			ID:              "Normal",
			Name:            "Normal",
			Font:            font(p.Run),
			SizePt:          p.Run.SizePt,
			Bold:            p.Run.Bold,
			Italic:          p.Run.Italic,
			Underline:       p.Run.Underline,
			Color:           p.Run.Color,
			SpacingBeforePt: p.SpacingBeforePt,
			SpacingAfterPt:  p.SpacingAfterPt,
			Alignment:       docmlAlignment(p.Alignment),
			OutlineLevel:    -1,
		})
	}

	for i, h := range s.Heading {
		if h == nil {
			continue
		}
		defs = append(defs, docml.StyleDef{
			ID:              fmt.Sprintf("Heading%d", i+1),
			Name:            fmt.Sprintf("heading %d", i+1),
			BasedOn:         "Normal",
			Font:            font(h.Run),
			SizePt:          h.Run.SizePt,
			Bold:            h.Run.Bold,
			Italic:          h.Run.Italic,
			Underline:       h.Run.Underline,
			Color:           h.Run.Color,
			SpacingBeforePt: h.SpacingBeforePt,
			SpacingAfterPt:  h.SpacingAfterPt,
			Alignment:       docmlAlignment(h.Alignment),
			OutlineLevel:    i,
		})
	}

	if li := s.ListItem; li != nil {
		defs = append(defs, docml.StyleDef{
			ID:              "ListParagraph",
			Name:            "List Paragraph",
			BasedOn:         "Normal",
			Font:            font(li.Run),
			SizePt:          li.Run.SizePt,
			Bold:            li.Run.Bold,
			Italic:          li.Run.Italic,
			Underline:       li.Run.Underline,
			Color:           li.Run.Color,
			SpacingBeforePt: li.SpacingBeforePt,
			SpacingAfterPt:  li.SpacingAfterPt,
			Alignment:       docmlAlignment(li.Alignment),
			OutlineLevel:    -1,
		})
	}

	if h := s.Hyperlink; h != nil {
		defs = append(defs, docml.StyleDef{
			ID:           "Hyperlink",
			Name:         "Hyperlink",
			Character:    true,
			Font:         h.Font,
			SizePt:       h.SizePt,
			Bold:         h.Bold,
			Italic:       h.Italic,
			Underline:    h.Underline,
			Color:        h.Color,
			OutlineLevel: -1,
		})
	}

	return defs
}

// docmlAlignment translates the public alignment names to the w:jc values
// WordProcessingML uses ("justify" becomes "both").
func docmlAlignment(a string) string {
	if a == "justify" {
		return "both"
	}
	return a
}
