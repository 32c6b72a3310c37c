// Package config loads style-sheet overrides from YAML files for the CLI.
//
// The file overrides individual fields of the default style mapping; fields
// left out keep their defaults. A heading entry with disabled: true removes
// that level from the mapping entirely, which makes conversions containing
// it fail instead of guessing a style.
package config

import (
	"errors"
	"fmt"
	"os"

	html2docx "github.com/tdelacour/go-html2docx"
	"github.com/tdelacour/go-html2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("style file not found")
	ErrConfigParse    = errors.New("failed to parse style file")
	ErrUnknownHeading = errors.New("unknown heading key (want h1..h6)")
)

// RunConfig overrides character formatting. Pointer fields distinguish "not
// set" from an explicit false.
type RunConfig struct {
	Font      string  `yaml:"font"`
	SizePt    float64 `yaml:"sizePt"`
	Bold      *bool   `yaml:"bold"`
	Italic    *bool   `yaml:"italic"`
	Underline *bool   `yaml:"underline"`
	Color     string  `yaml:"color"`
}

// blockConfig overrides one block style.
type blockConfig struct {
	RunConfig       `yaml:",inline"`
	SpacingBeforePt *float64 `yaml:"spacingBeforePt"`
	SpacingAfterPt  *float64 `yaml:"spacingAfterPt"`
	Alignment       string   `yaml:"alignment"`
	Disabled        bool     `yaml:"disabled"`
}

// styleFile is the root of a style overrides file.
type styleFile struct {
	Font      string                  `yaml:"font"`
	Paragraph *blockConfig            `yaml:"paragraph"`
	Headings  map[string]*blockConfig `yaml:"headings"`
	ListItem  *blockConfig            `yaml:"listItem"`
	Hyperlink *RunConfig              `yaml:"hyperlink"`
}

// LoadStyleSheet reads a YAML style file and applies it over the default
// style mapping. Unknown fields are rejected.
func LoadStyleSheet(path string) (html2docx.StyleSheet, error) {
	sheet := html2docx.DefaultStyleSheet()

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sheet, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return sheet, fmt.Errorf("reading style file %s: %w", path, err)
	}

	var file styleFile
	if err := yamlutil.UnmarshalStrict(data, &file); err != nil {
		return sheet, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if file.Font != "" {
		sheet.Font = file.Font
	}
	applyBlock(&sheet.Paragraph, file.Paragraph)
	applyBlock(&sheet.ListItem, file.ListItem)

	for key, bc := range file.Headings {
		level := headingLevel(key)
		if level == 0 {
			return sheet, fmt.Errorf("%w: %q", ErrUnknownHeading, key)
		}
		applyBlock(&sheet.Heading[level-1], bc)
	}

	if file.Hyperlink != nil {
		if sheet.Hyperlink == nil {
			sheet.Hyperlink = &html2docx.RunStyle{}
		}
		applyRun(sheet.Hyperlink, file.Hyperlink)
	}

	return sheet, nil
}

// applyBlock merges one block override into the target style. A disabled
// entry unmaps the kind.
func applyBlock(target **html2docx.BlockStyle, bc *blockConfig) {
	if bc == nil {
		return
	}
	if bc.Disabled {
		*target = nil
		return
	}
	if *target == nil {
		*target = &html2docx.BlockStyle{}
	}
	applyRun(&(*target).Run, &bc.RunConfig)
	if bc.SpacingBeforePt != nil {
		(*target).SpacingBeforePt = *bc.SpacingBeforePt
	}
	if bc.SpacingAfterPt != nil {
		(*target).SpacingAfterPt = *bc.SpacingAfterPt
	}
	if bc.Alignment != "" {
		(*target).Alignment = bc.Alignment
	}
}

// applyRun merges character overrides into a run style.
func applyRun(target *html2docx.RunStyle, rc *RunConfig) {
	if rc.Font != "" {
		target.Font = rc.Font
	}
	if rc.SizePt > 0 {
		target.SizePt = rc.SizePt
	}
	if rc.Bold != nil {
		target.Bold = *rc.Bold
	}
	if rc.Italic != nil {
		target.Italic = *rc.Italic
	}
	if rc.Underline != nil {
		target.Underline = *rc.Underline
	}
	if rc.Color != "" {
		target.Color = rc.Color
	}
}

// headingLevel maps "h1".."h6" to 1..6, returning 0 for anything else.
func headingLevel(key string) int {
	if len(key) == 2 && key[0] == 'h' && key[1] >= '1' && key[1] <= '6' {
		return int(key[1] - '0')
	}
	return 0
}
