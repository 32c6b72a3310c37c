package htmldoc

import "fmt"

// Kind identifies the structural kind of a block element.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindList
	KindListItem
)

// String returns a short name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindListItem:
		return "list item"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ListType distinguishes bulleted from numbered lists.
type ListType int

const (
	ListBullet ListType = iota
	ListNumber
)

// Span is a contiguous piece of inline content with uniform formatting.
// A Span with HardBreak set carries no text and marks a forced line break.
type Span struct {
	Text      string
	Bold      bool
	Italic    bool
	Href      string // hyperlink target; empty for plain text
	HardBreak bool
}

// Block is one element of the document in source order.
//
//   - KindHeading: Level is 1-6, Spans hold the heading text.
//   - KindParagraph: Spans hold the paragraph content.
//   - KindList: List is set, Items hold KindListItem blocks.
//   - KindListItem: Spans hold the item text, Items hold nested KindList
//     blocks.
type Block struct {
	Kind  Kind
	Level int
	List  ListType
	Spans []Span
	Items []*Block
	Line  int // source line of the opening tag
}

// Document is the parsed element tree. Blocks appear in source order and are
// never reordered or merged.
type Document struct {
	Blocks []*Block
}

// ParseError reports malformed or unsupported markup with its source line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
