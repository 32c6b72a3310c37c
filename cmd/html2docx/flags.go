package main

import (
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the converter CLI.
type cliFlags struct {
	styles  string
	pdf     bool
	timeout time.Duration
	quiet   bool
	verbose bool
	version bool
}

const usageText = `usage: html2docx [flags] <input.html|input.md> [output.docx]

Converts an HTML (or Markdown) resume page into a styled Word document.
The output path defaults to the input path with a .docx extension.

Flags:
`

// validateFlags rejects flag values that parse but make no sense, before any
// converter is constructed from them.
func validateFlags(flags *cliFlags) error {
	if flags.timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, flags.timeout)
	}
	return nil
}

// parseFlags parses command-line arguments. It returns the flags, the
// positional arguments, and any parse error.
func parseFlags(args []string, errOut io.Writer) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("html2docx", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprint(errOut, usageText)
		fs.PrintDefaults()
	}

	fs.StringVar(&flags.styles, "styles", "", "YAML file overriding the default style mapping")
	fs.BoolVar(&flags.pdf, "pdf", false, "also render a PDF next to the DOCX output")
	fs.DurationVar(&flags.timeout, "timeout", 30*time.Second, "PDF rendering timeout")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the success message")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "print progress to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
