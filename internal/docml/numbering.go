package docml

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// xmlNumbering is the root of word/numbering.xml. Two abstract definitions
// are emitted: one bullet, one decimal, each covering nine nesting levels.
type xmlNumbering struct {
	XMLName      xml.Name         `xml:"w:numbering"`
	NSMain       string           `xml:"xmlns:w,attr"`
	AbstractNums []xmlAbstractNum `xml:"w:abstractNum"`
	Nums         []xmlNum         `xml:"w:num"`
}

type xmlAbstractNum struct {
	ID             string   `xml:"w:abstractNumId,attr"`
	MultiLevelType xmlVal   `xml:"w:multiLevelType"`
	Levels         []xmlLvl `xml:"w:lvl"`
}

type xmlLvl struct {
	Ilvl    string        `xml:"w:ilvl,attr"`
	Start   xmlVal        `xml:"w:start"`
	NumFmt  xmlVal        `xml:"w:numFmt"`
	LvlText xmlVal        `xml:"w:lvlText"`
	LvlJc   xmlVal        `xml:"w:lvlJc"`
	PPr     *xmlParaProps `xml:"w:pPr,omitempty"`
}

type xmlNum struct {
	ID          string `xml:"w:numId,attr"`
	AbstractRef xmlVal `xml:"w:abstractNumId"`
}

// List indentation per nesting level, in twips.
const (
	listIndentStep = 720 // half an inch per level
	listHanging    = 360
)

// numberingXML renders the fixed numbering definitions backing bulleted and
// numbered list paragraphs.
func numberingXML() ([]byte, error) {
	root := xmlNumbering{
		NSMain: nsMain,
		AbstractNums: []xmlAbstractNum{
			abstractNum("0", func(lvl int) (string, string) {
				return "bullet", "•"
			}),
			abstractNum("1", func(lvl int) (string, string) {
				return "decimal", fmt.Sprintf("%%%d.", lvl+1)
			}),
		},
		Nums: []xmlNum{
			{ID: strconv.Itoa(bulletNumID), AbstractRef: xmlVal{Val: "0"}},
			{ID: strconv.Itoa(numberNumID), AbstractRef: xmlVal{Val: "1"}},
		},
	}

	out, err := xml.Marshal(root)
	if err != nil {
		return nil, err
	}
	return withHeader(out), nil
}

// abstractNum builds one abstract definition with nine levels whose format
// and text are produced by fmtFor.
func abstractNum(id string, fmtFor func(lvl int) (numFmt, lvlText string)) xmlAbstractNum {
	an := xmlAbstractNum{
		ID:             id,
		MultiLevelType: xmlVal{Val: "hybridMultilevel"},
	}
	for lvl := 0; lvl <= maxListDepth; lvl++ {
		numFmt, lvlText := fmtFor(lvl)
		an.Levels = append(an.Levels, xmlLvl{
			Ilvl:    strconv.Itoa(lvl),
			Start:   xmlVal{Val: "1"},
			NumFmt:  xmlVal{Val: numFmt},
			LvlText: xmlVal{Val: lvlText},
			LvlJc:   xmlVal{Val: "left"},
			PPr: &xmlParaProps{
				Indent: &xmlIndent{
					Left:    strconv.Itoa(listIndentStep * (lvl + 1)),
					Hanging: strconv.Itoa(listHanging),
				},
			},
		})
	}
	return an
}
