// Package html2docx converts an HTML resume or cover letter page into a
// styled Word document.
//
// # Quick Start
//
// Create a converter, convert a page, and close when done:
//
//	conv, err := html2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, html2docx.Input{
//	    HTML: "<h1>Jane Doe</h1><p>Experienced engineer.</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("resume.docx", result.DOCX, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Optional Markdown front-end (goldmark, GFM) when Input.Markdown is set
//  2. Strict HTML parsing into an ordered element tree
//  3. Document-order walk resolving each element against the style mapping
//  4. WordProcessingML assembly and .docx serialization
//  5. Optional PDF rendering of the source page via headless Chrome (go-rod)
//
// The transformation is deterministic and one-shot: the same input and style
// sheet always produce byte-identical output, block order mirrors source
// element order exactly, and an element kind missing from the style mapping
// fails the conversion with ErrUnmappedStyle rather than dropping content.
//
// # Styling
//
// The style mapping is an explicit immutable value, defaulting to the site's
// design (teal headings, dark body text). Pass an alternate mapping without
// touching shared state:
//
//	sheet := html2docx.DefaultStyleSheet()
//	sheet.Heading[0].Run.SizePt = 28
//	conv, err := html2docx.NewConverter(html2docx.WithStyleSheet(sheet))
//
// # Browser Requirements
//
// PDF output requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run. For containers and CI
// environments, set ROD_NO_SANDBOX=1 or ROD_BROWSER_BIN as needed. DOCX
// output has no external requirements.
package html2docx
