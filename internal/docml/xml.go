package docml

import "encoding/xml"

// WordProcessingML namespaces.
const (
	nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// xmlDocument is the root of word/document.xml.
type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NSMain  string   `xml:"xmlns:w,attr"`
	NSRel   string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

// xmlBody holds the document content followed by the section properties.
type xmlBody struct {
	Paragraphs []*xmlParagraph `xml:"w:p"`
	SectPr     xmlSectPr       `xml:"w:sectPr"`
}

// xmlParagraph is a w:p element. Content holds *xmlRun and *xmlHyperlink
// values in order; their XMLName fields determine the emitted element names.
type xmlParagraph struct {
	Props   *xmlParaProps `xml:"w:pPr,omitempty"`
	Content []any
}

type xmlParaProps struct {
	Style      *xmlVal     `xml:"w:pStyle,omitempty"`
	NumPr      *xmlNumPr   `xml:"w:numPr,omitempty"`
	Spacing    *xmlSpacing `xml:"w:spacing,omitempty"`
	Indent     *xmlIndent  `xml:"w:ind,omitempty"`
	Jc         *xmlVal     `xml:"w:jc,omitempty"`
	OutlineLvl *xmlVal     `xml:"w:outlineLvl,omitempty"`
}

type xmlIndent struct {
	Left    string `xml:"w:left,attr,omitempty"`
	Hanging string `xml:"w:hanging,attr,omitempty"`
}

// xmlVal is the ubiquitous single-attribute element <w:x w:val="..."/>.
type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlNumPr struct {
	Ilvl  xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlSpacing struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
}

// xmlRun is a w:r element: text with uniform character formatting.
type xmlRun struct {
	XMLName xml.Name    `xml:"w:r"`
	Props   *xmlRunProps `xml:"w:rPr,omitempty"`
	Content []any
}

// xmlRunProps fields follow the schema's rPr child order.
type xmlRunProps struct {
	Style     *xmlVal   `xml:"w:rStyle,omitempty"`
	Fonts     *xmlFonts `xml:"w:rFonts,omitempty"`
	Bold      *xmlFlag  `xml:"w:b,omitempty"`
	Italic    *xmlFlag  `xml:"w:i,omitempty"`
	Color     *xmlVal   `xml:"w:color,omitempty"`
	Size      *xmlVal   `xml:"w:sz,omitempty"`
	SizeCs    *xmlVal   `xml:"w:szCs,omitempty"`
	Underline *xmlVal   `xml:"w:u,omitempty"`
}

// xmlFlag is an empty toggle element such as <w:b/>.
type xmlFlag struct{}

type xmlFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

// xmlText is a w:t element. Space is set to "preserve" when the text has
// significant leading or trailing whitespace.
type xmlText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

// xmlBreak is a w:br element (hard line break within a paragraph).
type xmlBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

// xmlHyperlink wraps runs that link to an external relationship target.
type xmlHyperlink struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	RelID   string   `xml:"r:id,attr"`
	Runs    []*xmlRun
}

// xmlSectPr carries the page geometry (US Letter, half-inch margins).
type xmlSectPr struct {
	PgSz  xmlPageSize    `xml:"w:pgSz"`
	PgMar xmlPageMargins `xml:"w:pgMar"`
}

type xmlPageSize struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type xmlPageMargins struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}
