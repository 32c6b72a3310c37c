package htmldoc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// node is a minimal DOM node produced by the strict tokenizer pass.
// A node with an empty tag is a text node.
type node struct {
	tag      string
	text     string
	attrs    []html.Attribute
	children []*node
	line     int
}

// voidElements never contain children and need no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// buildTree tokenizes the input and assembles a DOM tree, enforcing
// well-formedness: every non-void start tag must be closed by a matching end
// tag, in order. html.Parse is deliberately not used here because it repairs
// broken markup instead of reporting it.
func buildTree(r io.Reader) (*node, error) {
	z := html.NewTokenizer(r)
	root := &node{line: 1}
	stack := []*node{root}
	line := 1

	for {
		tt := z.Next()
		raw := z.Raw()

		switch tt {
		case html.ErrorToken:
			err := z.Err()
			if err == io.EOF {
				if len(stack) > 1 {
					open := stack[len(stack)-1]
					return nil, &ParseError{
						Line: open.line,
						Msg:  fmt.Sprintf("unclosed <%s>", open.tag),
					}
				}
				return root, nil
			}
			return nil, &ParseError{Line: line, Msg: err.Error()}

		case html.TextToken:
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, &node{
				text: string(z.Text()),
				line: line,
			})

		case html.StartTagToken:
			tok := z.Token()
			n := &node{tag: tok.Data, attrs: tok.Attr, line: line}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, n)
			if !voidElements[n.tag] {
				stack = append(stack, n)
			}

		case html.SelfClosingTagToken:
			tok := z.Token()
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, &node{
				tag:   tok.Data,
				attrs: tok.Attr,
				line:  line,
			})

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if voidElements[tag] {
				break // stray </br> and friends are tolerated as no-ops
			}
			if len(stack) == 1 {
				return nil, &ParseError{
					Line: line,
					Msg:  fmt.Sprintf("unexpected </%s>: no element is open", tag),
				}
			}
			open := stack[len(stack)-1]
			if open.tag != tag {
				return nil, &ParseError{
					Line: line,
					Msg: fmt.Sprintf("unexpected </%s>: <%s> opened on line %d is still open",
						tag, open.tag, open.line),
				}
			}
			stack = stack[:len(stack)-1]

		case html.CommentToken, html.DoctypeToken:
			// Carry no content; dropped.
		}

		line += bytes.Count(raw, []byte{'\n'})
	}
}

// attr returns the value of the named attribute, or "".
func (n *node) attr(name string) string {
	for _, a := range n.attrs {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
