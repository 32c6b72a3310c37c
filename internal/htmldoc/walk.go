package htmldoc

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// transparentElements contribute no structure of their own; their children
// are walked in place, in order.
var transparentElements = map[string]bool{
	"html": true, "body": true, "div": true, "section": true,
	"article": true, "main": true, "header": true, "footer": true,
	"nav": true, "aside": true, "figure": true,
}

// skippedElements are dropped together with their entire subtree.
var skippedElements = map[string]bool{
	"head": true, "script": true, "style": true, "title": true,
	"meta": true, "link": true, "base": true, "img": true, "hr": true,
}

// transparentInline keep their text but carry no formatting of their own.
var transparentInline = map[string]bool{
	"span": true, "small": true, "sup": true, "sub": true, "abbr": true,
	"time": true, "code": true, "u": true, "mark": true, "cite": true,
}

// inlineState tracks formatting inherited from enclosing inline elements.
type inlineState struct {
	bold   bool
	italic bool
	href   string
}

// Parse reads HTML from r and returns the document element tree.
// It fails with a *ParseError when the markup is not well-formed or contains
// a content-bearing element outside the supported grammar.
func Parse(r io.Reader) (*Document, error) {
	root, err := buildTree(r)
	if err != nil {
		return nil, err
	}
	blocks, err := walkBlocks(root.children)
	if err != nil {
		return nil, err
	}
	return &Document{Blocks: blocks}, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// walkBlocks walks sibling nodes in block context. Bare inline content
// (text directly inside a div, a contact row of spans) is accumulated into
// an implicit paragraph, flushed when a block element begins.
func walkBlocks(children []*node) ([]*Block, error) {
	var blocks []*Block
	var pending []Span
	pendingLine := 0

	flush := func() {
		spans := normalizeSpans(pending)
		if len(spans) > 0 {
			blocks = append(blocks, &Block{
				Kind:  KindParagraph,
				Spans: spans,
				Line:  pendingLine,
			})
		}
		pending = nil
		pendingLine = 0
	}

	for _, c := range children {
		switch {
		case c.tag == "":
			text := collapseWhitespace(c.text)
			if strings.TrimSpace(text) == "" && len(pending) == 0 {
				continue // inter-block whitespace
			}
			if pendingLine == 0 {
				pendingLine = c.line
			}
			pending = append(pending, Span{Text: text})

		case skippedElements[c.tag]:
			continue

		case transparentElements[c.tag]:
			flush()
			sub, err := walkBlocks(c.children)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, sub...)

		case headingLevel(c.tag) > 0:
			flush()
			spans, err := collectInline(c, inlineState{})
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, &Block{
				Kind:  KindHeading,
				Level: headingLevel(c.tag),
				Spans: normalizeSpans(spans),
				Line:  c.line,
			})

		case c.tag == "p":
			flush()
			spans, err := collectInline(c, inlineState{})
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, &Block{
				Kind:  KindParagraph,
				Spans: normalizeSpans(spans),
				Line:  c.line,
			})

		case c.tag == "ul" || c.tag == "ol":
			flush()
			list, err := walkList(c)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, list)

		case c.tag == "li":
			return nil, &ParseError{Line: c.line, Msg: "<li> outside a list"}

		case isInlineTag(c.tag):
			if pendingLine == 0 {
				pendingLine = c.line
			}
			spans, err := collectNodeInline(c, inlineState{})
			if err != nil {
				return nil, err
			}
			pending = append(pending, spans...)

		default:
			return nil, &ParseError{
				Line: c.line,
				Msg:  fmt.Sprintf("unsupported element <%s>", c.tag),
			}
		}
	}

	flush()
	return blocks, nil
}

// walkList converts a ul/ol node into a KindList block.
func walkList(n *node) (*Block, error) {
	lt := ListBullet
	if n.tag == "ol" {
		lt = ListNumber
	}
	list := &Block{Kind: KindList, List: lt, Line: n.line}

	for _, c := range n.children {
		switch {
		case c.tag == "":
			if strings.TrimSpace(c.text) != "" {
				return nil, &ParseError{Line: c.line, Msg: "text outside <li> in a list"}
			}
		case c.tag == "li":
			item, err := walkListItem(c)
			if err != nil {
				return nil, err
			}
			list.Items = append(list.Items, item)
		default:
			return nil, &ParseError{
				Line: c.line,
				Msg:  fmt.Sprintf("unsupported element <%s> in a list", c.tag),
			}
		}
	}
	return list, nil
}

// walkListItem converts an li node. Inline content becomes the item's spans;
// a nested ul/ol becomes a child list. A p inside an item contributes its
// spans, separated from earlier content by a hard break.
func walkListItem(n *node) (*Block, error) {
	item := &Block{Kind: KindListItem, Line: n.line}
	var spans []Span

	for _, c := range n.children {
		switch {
		case c.tag == "ul" || c.tag == "ol":
			sub, err := walkList(c)
			if err != nil {
				return nil, err
			}
			item.Items = append(item.Items, sub)
		case c.tag == "p":
			ps, err := collectInline(c, inlineState{})
			if err != nil {
				return nil, err
			}
			if len(normalizeSpans(spans)) > 0 {
				spans = append(spans, Span{HardBreak: true})
			}
			spans = append(spans, ps...)
		case c.tag == "" || isInlineTag(c.tag) || skippedElements[c.tag]:
			ns, err := collectNodeInline(c, inlineState{})
			if err != nil {
				return nil, err
			}
			spans = append(spans, ns...)
		default:
			return nil, &ParseError{
				Line: c.line,
				Msg:  fmt.Sprintf("unsupported element <%s> in a list item", c.tag),
			}
		}
	}

	item.Spans = normalizeSpans(spans)
	return item, nil
}

// collectInline gathers the inline spans of a container's children.
func collectInline(n *node, st inlineState) ([]Span, error) {
	var spans []Span
	for _, c := range n.children {
		sub, err := collectNodeInline(c, st)
		if err != nil {
			return nil, err
		}
		spans = append(spans, sub...)
	}
	return spans, nil
}

// collectNodeInline gathers the spans of a single node in inline context.
func collectNodeInline(c *node, st inlineState) ([]Span, error) {
	switch {
	case c.tag == "":
		text := collapseWhitespace(c.text)
		if text == "" {
			return nil, nil
		}
		return []Span{{Text: text, Bold: st.bold, Italic: st.italic, Href: st.href}}, nil
	case c.tag == "br":
		return []Span{{HardBreak: true}}, nil
	case c.tag == "strong" || c.tag == "b":
		st.bold = true
		return collectInline(c, st)
	case c.tag == "em" || c.tag == "i":
		st.italic = true
		return collectInline(c, st)
	case c.tag == "a":
		st.href = c.attr("href")
		return collectInline(c, st)
	case transparentInline[c.tag]:
		return collectInline(c, st)
	case skippedElements[c.tag]:
		return nil, nil
	default:
		return nil, &ParseError{
			Line: c.line,
			Msg:  fmt.Sprintf("unsupported inline element <%s>", c.tag),
		}
	}
}

// headingLevel returns 1-6 for h1-h6 tags, 0 otherwise.
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// isInlineTag reports whether the tag is valid in inline context.
func isInlineTag(tag string) bool {
	switch tag {
	case "a", "strong", "b", "em", "i", "br":
		return true
	}
	return transparentInline[tag]
}

// collapseWhitespace reduces every run of whitespace to a single space,
// matching how browsers render inter-word whitespace in markup. Leading and
// trailing spaces are kept; they are significant between adjacent spans and
// trimmed at block edges by normalizeSpans.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeSpans merges adjacent spans with identical formatting, collapses
// the whitespace that merging can double up, and trims block edges. Spans
// reduced to nothing are dropped; a slice with no visible text normalizes to
// nil.
func normalizeSpans(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		if s.HardBreak {
			out = append(out, s)
			continue
		}
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && sameFormat(out[n-1], s) {
			prev := &out[n-1]
			if strings.HasSuffix(prev.Text, " ") && strings.HasPrefix(s.Text, " ") {
				s.Text = s.Text[1:]
			}
			prev.Text += s.Text
			continue
		}
		out = append(out, s)
	}

	// Trim leading whitespace from the first text span.
	for len(out) > 0 && !out[0].HardBreak {
		out[0].Text = strings.TrimLeft(out[0].Text, " ")
		if out[0].Text != "" {
			break
		}
		out = out[1:]
	}
	// Trim trailing whitespace from the last text span.
	for n := len(out); n > 0 && !out[n-1].HardBreak; n = len(out) {
		out[n-1].Text = strings.TrimRight(out[n-1].Text, " ")
		if out[n-1].Text != "" {
			break
		}
		out = out[:n-1]
	}

	if !spansHaveText(out) {
		return nil
	}
	return out
}

// sameFormat reports whether two text spans carry identical formatting.
func sameFormat(a, b Span) bool {
	return !a.HardBreak && !b.HardBreak &&
		a.Bold == b.Bold && a.Italic == b.Italic && a.Href == b.Href
}

// spansHaveText reports whether any span carries visible text.
func spansHaveText(spans []Span) bool {
	for _, s := range spans {
		if strings.TrimSpace(s.Text) != "" {
			return true
		}
	}
	return false
}
