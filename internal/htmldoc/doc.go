// Package htmldoc parses an HTML document into an ordered element tree
// restricted to the structural grammar of a resume page: headings H1-H6,
// paragraphs, ordered/unordered lists, and inline bold/italic/hyperlink
// spans.
//
// Parsing is strict. Unlike html.Parse, which repairs broken markup the way
// browsers do, this package drives the tokenizer directly and rejects
// mismatched, stray, or unclosed tags with a *ParseError carrying the line
// number. Elements outside the grammar that carry content are rejected
// rather than silently dropped.
package htmldoc
