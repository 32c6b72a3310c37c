package docml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
)

// Static archive parts. Part names and order are fixed so that repeated
// builds of the same document are byte-identical.
const (
	contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"></Default>` +
		`<Default Extension="xml" ContentType="application/xml"></Default>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"></Override>` +
		`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"></Override>` +
		`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"></Override>` +
		`</Types>`

	rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"></Relationship>` +
		`</Relationships>`
)

// xmlRelationships is word/_rels/document.xml.rels.
type xmlRelationships struct {
	XMLName xml.Name          `xml:"Relationships"`
	NS      string            `xml:"xmlns,attr"`
	Rels    []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

const (
	relTypeStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relTypeHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// US Letter geometry in twips.
var defaultSectPr = xmlSectPr{
	PgSz: xmlPageSize{W: "12240", H: "15840"},
	PgMar: xmlPageMargins{
		Top: "720", Right: "720", Bottom: "720", Left: "720",
		Header: "432", Footer: "432", Gutter: "0",
	},
}

// Bytes serializes the accumulated blocks into a complete .docx archive.
func (b *Builder) Bytes() ([]byte, error) {
	docXML, err := b.documentXML()
	if err != nil {
		return nil, fmt.Errorf("rendering document.xml: %w", err)
	}
	stylesOut, err := stylesXML(b.styles)
	if err != nil {
		return nil, fmt.Errorf("rendering styles.xml: %w", err)
	}
	numberingOut, err := numberingXML()
	if err != nil {
		return nil, fmt.Errorf("rendering numbering.xml: %w", err)
	}
	relsOut, err := b.relationshipsXML()
	if err != nil {
		return nil, fmt.Errorf("rendering relationships: %w", err)
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"word/document.xml", docXML},
		{"word/styles.xml", stylesOut},
		{"word/numbering.xml", numberingOut},
		{"word/_rels/document.xml.rels", relsOut},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		// Zero Modified time keeps the archive reproducible.
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   p.name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("writing archive entry %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// documentXML renders word/document.xml.
func (b *Builder) documentXML() ([]byte, error) {
	root := xmlDocument{
		NSMain: nsMain,
		NSRel:  nsRel,
		Body: xmlBody{
			Paragraphs: b.paras,
			SectPr:     defaultSectPr,
		},
	}
	out, err := xml.Marshal(root)
	if err != nil {
		return nil, err
	}
	return withHeader(out), nil
}

// relationshipsXML renders word/_rels/document.xml.rels: the fixed styles
// and numbering relationships followed by hyperlink targets in first-use
// order.
func (b *Builder) relationshipsXML() ([]byte, error) {
	root := xmlRelationships{
		NS: "http://schemas.openxmlformats.org/package/2006/relationships",
		Rels: []xmlRelationship{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relTypeNumbering, Target: "numbering.xml"},
		},
	}
	for i, href := range b.relOrder {
		root.Rels = append(root.Rels, xmlRelationship{
			ID:         fmt.Sprintf("rId%d", firstHyperlinkRelID+i),
			Type:       relTypeHyperlink,
			Target:     href,
			TargetMode: "External",
		})
	}
	out, err := xml.Marshal(root)
	if err != nil {
		return nil, err
	}
	return withHeader(out), nil
}

// withHeader prepends the XML declaration.
func withHeader(body []byte) []byte {
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	return append(out, body...)
}
