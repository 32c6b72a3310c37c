package docml

import (
	"fmt"
	"strconv"
	"strings"
)

// ListType distinguishes bulleted from numbered list paragraphs.
type ListType int

const (
	ListBullet ListType = iota
	ListNumber
)

// Numbering definition ids referenced by list paragraphs.
// They match the w:num entries emitted in numbering.xml.
const (
	bulletNumID = 1
	numberNumID = 2
)

// Relationship ids rId1 and rId2 are reserved for styles.xml and
// numbering.xml; hyperlink relationships start after them.
const firstHyperlinkRelID = 3

// maxListDepth is the deepest nesting level numbering.xml defines.
const maxListDepth = 8

// Run is one contiguous piece of text with uniform formatting.
// A Run with Break set carries no text and produces a hard line break.
// A Run with a non-empty Href becomes hyperlink text; consecutive runs with
// the same Href share a single hyperlink element.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Href   string
	Break  bool
}

// Builder accumulates formatted blocks in order and serializes them into a
// .docx archive. The zero value is not usable; call NewBuilder.
type Builder struct {
	styles    []StyleDef
	paras     []*xmlParagraph
	relOrder  []string       // hyperlink targets in first-use order
	relByHref map[string]int // target -> relationship id
}

// NewBuilder creates a Builder that emits the given style definitions into
// the document's styles.xml.
func NewBuilder(styles []StyleDef) *Builder {
	return &Builder{
		styles:    styles,
		relByHref: make(map[string]int),
	}
}

// BlockCount returns the number of blocks added so far.
func (b *Builder) BlockCount() int {
	return len(b.paras)
}

// AddHeading appends a heading paragraph referencing the native
// Heading<level> style.
func (b *Builder) AddHeading(level int, runs []Run) {
	b.paras = append(b.paras, &xmlParagraph{
		Props:   &xmlParaProps{Style: &xmlVal{Val: fmt.Sprintf("Heading%d", level)}},
		Content: b.buildContent(runs),
	})
}

// AddParagraph appends a body paragraph.
func (b *Builder) AddParagraph(runs []Run) {
	b.paras = append(b.paras, &xmlParagraph{
		Content: b.buildContent(runs),
	})
}

// AddListItem appends a list paragraph at the given nesting depth (0-based).
// Depths beyond the numbering definition's deepest level are clamped.
func (b *Builder) AddListItem(lt ListType, depth int, runs []Run) {
	if depth < 0 {
		depth = 0
	}
	if depth > maxListDepth {
		depth = maxListDepth
	}
	numID := bulletNumID
	if lt == ListNumber {
		numID = numberNumID
	}
	b.paras = append(b.paras, &xmlParagraph{
		Props: &xmlParaProps{
			Style: &xmlVal{Val: listStyleID},
			NumPr: &xmlNumPr{
				Ilvl:  xmlVal{Val: strconv.Itoa(depth)},
				NumID: xmlVal{Val: strconv.Itoa(numID)},
			},
		},
		Content: b.buildContent(runs),
	})
}

// buildContent converts runs into paragraph children, grouping consecutive
// runs that share a hyperlink target under one w:hyperlink element.
func (b *Builder) buildContent(runs []Run) []any {
	var content []any
	for i := 0; i < len(runs); {
		r := runs[i]
		if r.Href == "" || r.Break {
			content = append(content, buildRun(r, false))
			i++
			continue
		}
		link := &xmlHyperlink{RelID: fmt.Sprintf("rId%d", b.relID(r.Href))}
		for i < len(runs) && runs[i].Href == r.Href && !runs[i].Break {
			link.Runs = append(link.Runs, buildRun(runs[i], true))
			i++
		}
		content = append(content, link)
	}
	return content
}

// relID returns the relationship id for a hyperlink target, allocating one
// in document order on first use.
func (b *Builder) relID(href string) int {
	if id, ok := b.relByHref[href]; ok {
		return id
	}
	id := firstHyperlinkRelID + len(b.relOrder)
	b.relByHref[href] = id
	b.relOrder = append(b.relOrder, href)
	return id
}

// buildRun converts one Run into a w:r element.
func buildRun(r Run, hyperlink bool) *xmlRun {
	run := &xmlRun{}

	var props xmlRunProps
	hasProps := false
	if hyperlink {
		props.Style = &xmlVal{Val: hyperlinkStyleID}
		hasProps = true
	}
	if r.Bold {
		props.Bold = &xmlFlag{}
		hasProps = true
	}
	if r.Italic {
		props.Italic = &xmlFlag{}
		hasProps = true
	}
	if hasProps {
		run.Props = &props
	}

	if r.Break {
		run.Content = append(run.Content, &xmlBreak{})
		return run
	}

	text := &xmlText{Text: r.Text}
	if strings.HasPrefix(r.Text, " ") || strings.HasSuffix(r.Text, " ") {
		text.Space = "preserve"
	}
	run.Content = append(run.Content, text)
	return run
}

// halfPoints renders a point size as the half-point string OOXML expects.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt*2 + 0.5))
}

// twips renders a point length as twentieths of a point.
func twips(pt float64) string {
	return strconv.Itoa(int(pt*20 + 0.5))
}
