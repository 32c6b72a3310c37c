package html2docx_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	html2docx "github.com/tdelacour/go-html2docx"
)

// Example converts a small resume page to DOCX with the default styles.
func Example() {
	conv, err := html2docx.NewConverter()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = conv.Close() }()

	page := `<h1>Jane Doe</h1>
<p>Experienced engineer.</p>
<ul><li>Go</li><li>Distributed systems</li></ul>`

	result, err := conv.Convert(context.Background(), html2docx.Input{HTML: page})
	if err != nil {
		log.Fatal(err)
	}

	// A DOCX file is a ZIP archive.
	fmt.Println(len(result.DOCX) > 0, bytes.HasPrefix(result.DOCX, []byte("PK")))
	// Output: true true
}
