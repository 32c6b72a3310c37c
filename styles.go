package html2docx

import (
	"fmt"
	"strings"
)

// Brand palette carried over from the site's CSS custom properties.
const (
	ColorPrimary   = "0D6E6E" // teal
	ColorSecondary = "14919B" // light teal
	ColorAccent    = "1A3A3A" // deep teal
	ColorDark      = "2C3E50" // body text
	ColorGray      = "666666" // de-emphasized text
)

// DefaultFont is the document font used when a style sheet does not name one.
const DefaultFont = "Calibri"

// RunStyle describes character formatting for a span of text.
type RunStyle struct {
	Font      string
	SizePt    float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     string // RRGGBB
}

// BlockStyle describes the formatting of one block element kind.
type BlockStyle struct {
	Run             RunStyle
	SpacingBeforePt float64
	SpacingAfterPt  float64
	Alignment       string // "", "left", "center", "right", "justify"
}

// StyleSheet is the static mapping from element kind to output formatting.
// It is passed into the converter by value and never mutated. A nil entry
// for a kind present in the input fails the conversion with ErrUnmappedStyle
// instead of silently dropping content.
type StyleSheet struct {
	Font      string
	Paragraph *BlockStyle
	Heading   [6]*BlockStyle // index 0 is H1
	ListItem  *BlockStyle
	Hyperlink *RunStyle
}

// DefaultStyleSheet returns the style mapping matching the web design:
// teal headings, dark body text, compact resume spacing.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		Font: DefaultFont,
		Paragraph: &BlockStyle{
			Run:            RunStyle{SizePt: 10, Color: ColorDark},
			SpacingAfterPt: 2,
		},
		Heading: [6]*BlockStyle{
			{Run: RunStyle{SizePt: 22, Bold: true, Color: ColorPrimary}, SpacingBeforePt: 4, SpacingAfterPt: 2},
			{Run: RunStyle{SizePt: 12, Bold: true, Color: ColorPrimary}, SpacingBeforePt: 10, SpacingAfterPt: 6},
			{Run: RunStyle{SizePt: 10, Bold: true, Color: ColorAccent}, SpacingBeforePt: 4, SpacingAfterPt: 2},
			{Run: RunStyle{SizePt: 10, Bold: true, Color: ColorSecondary}, SpacingBeforePt: 4, SpacingAfterPt: 2},
			{Run: RunStyle{SizePt: 9, Bold: true, Color: ColorDark}, SpacingBeforePt: 3, SpacingAfterPt: 2},
			{Run: RunStyle{SizePt: 9, Bold: true, Italic: true, Color: ColorGray}, SpacingBeforePt: 3, SpacingAfterPt: 2},
		},
		ListItem: &BlockStyle{
			Run:             RunStyle{SizePt: 9, Color: ColorDark},
			SpacingBeforePt: 1,
			SpacingAfterPt:  1,
		},
		Hyperlink: &RunStyle{Color: ColorSecondary, Underline: true},
	}
}

// Validate checks that every mapped style carries usable values.
// Unmapped (nil) entries are legal here; they fail later, and only if the
// input actually contains the kind.
func (s *StyleSheet) Validate() error {
	if s.Paragraph != nil {
		if err := s.Paragraph.validate("paragraph"); err != nil {
			return err
		}
	}
	for i, h := range s.Heading {
		if h == nil {
			continue
		}
		if err := h.validate(fmt.Sprintf("heading %d", i+1)); err != nil {
			return err
		}
	}
	if s.ListItem != nil {
		if err := s.ListItem.validate("list item"); err != nil {
			return err
		}
	}
	if s.Hyperlink != nil {
		if err := s.Hyperlink.validate("hyperlink"); err != nil {
			return err
		}
	}
	return nil
}

// validate checks one block style.
func (b *BlockStyle) validate(kind string) error {
	if err := b.Run.validate(kind); err != nil {
		return err
	}
	switch strings.ToLower(b.Alignment) {
	case "", "left", "center", "right", "justify":
	default:
		return fmt.Errorf("%w: %s alignment %q", ErrInvalidAlignment, kind, b.Alignment)
	}
	if b.SpacingBeforePt < 0 || b.SpacingAfterPt < 0 {
		return fmt.Errorf("%w: %s spacing cannot be negative", ErrInvalidStyleSheet, kind)
	}
	return nil
}

// validate checks one run style.
func (r *RunStyle) validate(kind string) error {
	if r.SizePt < 0 {
		return fmt.Errorf("%w: %s size %.1f", ErrInvalidSize, kind, r.SizePt)
	}
	if r.Color != "" && !isHexColor(r.Color) {
		return fmt.Errorf("%w: %s color %q (want RRGGBB)", ErrInvalidColor, kind, r.Color)
	}
	return nil
}

// headingStyle resolves the block style for a heading level, failing with
// ErrUnmappedStyle when the level has no mapping.
func (s *StyleSheet) headingStyle(level int) (*BlockStyle, error) {
	if level < 1 || level > 6 || s.Heading[level-1] == nil {
		return nil, fmt.Errorf("%w: heading level %d", ErrUnmappedStyle, level)
	}
	return s.Heading[level-1], nil
}

// isHexColor reports whether s is a six-digit hex color without a leading #.
func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
