package docml

import (
	"encoding/xml"
	"strconv"
)

// Style ids referenced from paragraph and run properties.
const (
	normalStyleID    = "Normal"
	listStyleID      = "ListParagraph"
	hyperlinkStyleID = "Hyperlink"
)

// StyleDef describes one entry of the generated styles.xml.
// Character is true for character styles (Hyperlink); everything else is a
// paragraph style.
type StyleDef struct {
	ID        string
	Name      string
	BasedOn   string
	Character bool

	Font      string
	SizePt    float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     string // RRGGBB, empty for automatic

	SpacingBeforePt float64
	SpacingAfterPt  float64
	Alignment       string // "", "left", "center", "right", "both"
	OutlineLevel    int    // 0-8 for headings, -1 for none
}

// xmlStyles is the root of word/styles.xml.
type xmlStyles struct {
	XMLName     xml.Name        `xml:"w:styles"`
	NSMain      string          `xml:"xmlns:w,attr"`
	DocDefaults *xmlDocDefaults `xml:"w:docDefaults,omitempty"`
	Styles      []xmlStyle      `xml:"w:style"`
}

type xmlDocDefaults struct {
	RPrDefault struct {
		RPr *xmlRunProps `xml:"w:rPr,omitempty"`
	} `xml:"w:rPrDefault"`
}

type xmlStyle struct {
	Type    string        `xml:"w:type,attr"`
	ID      string        `xml:"w:styleId,attr"`
	Name    xmlVal        `xml:"w:name"`
	BasedOn *xmlVal       `xml:"w:basedOn,omitempty"`
	PPr     *xmlParaProps `xml:"w:pPr,omitempty"`
	RPr     *xmlRunProps  `xml:"w:rPr,omitempty"`
}

// stylesXML renders the style definitions, using the first paragraph style's
// font and size as the document defaults.
func stylesXML(defs []StyleDef) ([]byte, error) {
	root := xmlStyles{NSMain: nsMain}

	for _, d := range defs {
		if !d.Character && d.Font != "" {
			dd := &xmlDocDefaults{}
			dd.RPrDefault.RPr = &xmlRunProps{
				Fonts: &xmlFonts{ASCII: d.Font, HAnsi: d.Font},
				Size:  &xmlVal{Val: halfPoints(d.SizePt)},
			}
			root.DocDefaults = dd
			break
		}
	}

	for _, d := range defs {
		root.Styles = append(root.Styles, styleEntry(d))
	}

	out, err := xml.Marshal(root)
	if err != nil {
		return nil, err
	}
	return withHeader(out), nil
}

func styleEntry(d StyleDef) xmlStyle {
	s := xmlStyle{
		Type: "paragraph",
		ID:   d.ID,
		Name: xmlVal{Val: d.Name},
	}
	if d.Character {
		s.Type = "character"
	}
	if d.BasedOn != "" {
		s.BasedOn = &xmlVal{Val: d.BasedOn}
	}

	if !d.Character {
		ppr := &xmlParaProps{}
		hasPPr := false
		if d.SpacingBeforePt > 0 || d.SpacingAfterPt > 0 {
			sp := &xmlSpacing{}
			if d.SpacingBeforePt > 0 {
				sp.Before = twips(d.SpacingBeforePt)
			}
			if d.SpacingAfterPt > 0 {
				sp.After = twips(d.SpacingAfterPt)
			}
			ppr.Spacing = sp
			hasPPr = true
		}
		if d.Alignment != "" {
			ppr.Jc = &xmlVal{Val: d.Alignment}
			hasPPr = true
		}
		if d.OutlineLevel >= 0 {
			ppr.OutlineLvl = &xmlVal{Val: strconv.Itoa(d.OutlineLevel)}
			hasPPr = true
		}
		if hasPPr {
			s.PPr = ppr
		}
	}

	rpr := &xmlRunProps{}
	hasRPr := false
	if d.Font != "" {
		rpr.Fonts = &xmlFonts{ASCII: d.Font, HAnsi: d.Font}
		hasRPr = true
	}
	if d.Bold {
		rpr.Bold = &xmlFlag{}
		hasRPr = true
	}
	if d.Italic {
		rpr.Italic = &xmlFlag{}
		hasRPr = true
	}
	if d.Color != "" {
		rpr.Color = &xmlVal{Val: d.Color}
		hasRPr = true
	}
	if d.SizePt > 0 {
		rpr.Size = &xmlVal{Val: halfPoints(d.SizePt)}
		rpr.SizeCs = &xmlVal{Val: halfPoints(d.SizePt)}
		hasRPr = true
	}
	if d.Underline {
		rpr.Underline = &xmlVal{Val: "single"}
		hasRPr = true
	}
	if hasRPr {
		s.RPr = rpr
	}
	return s
}
