package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	html2docx "github.com/tdelacour/go-html2docx"
	"github.com/tdelacour/go-html2docx/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, positional, err := parseFlags(os.Args, os.Stderr)
	if err != nil {
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Printf("html2docx %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env is
	// invalid, in which case Go runtime defaults apply.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := realMain(flags, positional); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// realMain wires configuration, the converter, and the run loop.
func realMain(flags *cliFlags, positional []string) error {
	if err := validateFlags(flags); err != nil {
		return err
	}

	opts := []html2docx.Option{html2docx.WithTimeout(flags.timeout)}

	if flags.styles != "" {
		sheet, err := config.LoadStyleSheet(flags.styles)
		if err != nil {
			return err
		}
		opts = append(opts, html2docx.WithStyleSheet(sheet))
	}

	conv, err := html2docx.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	return run(context.Background(), positional, flags, conv, os.Stdout, os.Stderr)
}
