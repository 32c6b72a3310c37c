package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	html2docx "github.com/tdelacour/go-html2docx"
	"github.com/tdelacour/go-html2docx/internal/config"
)

// writeStyleFile drops YAML content into a temp file and returns its path.
func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing style file: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestLoadStyleSheet_Overrides
// ---------------------------------------------------------------------------

func TestLoadStyleSheet_Overrides(t *testing.T) {
	t.Parallel()

	path := writeStyleFile(t, `
font: Georgia
paragraph:
  sizePt: 11
  color: "333333"
headings:
  h1:
    sizePt: 26
    bold: false
  h3:
    italic: true
listItem:
  spacingAfterPt: 3
hyperlink:
  underline: false
  color: "0000EE"
`)

	sheet, err := config.LoadStyleSheet(path)
	if err != nil {
		t.Fatalf("LoadStyleSheet() error = %v", err)
	}

	if sheet.Font != "Georgia" {
		t.Errorf("Font = %q, want Georgia", sheet.Font)
	}
	if got := sheet.Paragraph.Run.SizePt; got != 11 {
		t.Errorf("paragraph size = %v, want 11", got)
	}
	if got := sheet.Paragraph.Run.Color; got != "333333" {
		t.Errorf("paragraph color = %q, want 333333", got)
	}
	if got := sheet.Heading[0].Run.SizePt; got != 26 {
		t.Errorf("h1 size = %v, want 26", got)
	}
	if sheet.Heading[0].Run.Bold {
		t.Error("h1 bold override (false) not applied")
	}
	if !sheet.Heading[2].Run.Italic {
		t.Error("h3 italic override not applied")
	}
	if got := sheet.ListItem.SpacingAfterPt; got != 3 {
		t.Errorf("list item spacingAfter = %v, want 3", got)
	}
	if sheet.Hyperlink.Underline {
		t.Error("hyperlink underline override (false) not applied")
	}
	if got := sheet.Hyperlink.Color; got != "0000EE" {
		t.Errorf("hyperlink color = %q, want 0000EE", got)
	}

	// Untouched fields keep their defaults.
	defaults := html2docx.DefaultStyleSheet()
	if got := sheet.Heading[1].Run.SizePt; got != defaults.Heading[1].Run.SizePt {
		t.Errorf("h2 size changed to %v without an override", got)
	}
	if got := sheet.Paragraph.SpacingAfterPt; got != defaults.Paragraph.SpacingAfterPt {
		t.Errorf("paragraph spacingAfter changed to %v without an override", got)
	}
}

// ---------------------------------------------------------------------------
// TestLoadStyleSheet_DisabledHeading
// ---------------------------------------------------------------------------

func TestLoadStyleSheet_DisabledHeading(t *testing.T) {
	t.Parallel()

	path := writeStyleFile(t, `
headings:
  h5:
    disabled: true
`)

	sheet, err := config.LoadStyleSheet(path)
	if err != nil {
		t.Fatalf("LoadStyleSheet() error = %v", err)
	}
	if sheet.Heading[4] != nil {
		t.Error("disabled h5 still mapped")
	}
	if sheet.Heading[0] == nil || sheet.Heading[5] == nil {
		t.Error("disabling h5 removed other levels")
	}
}

// ---------------------------------------------------------------------------
// TestLoadStyleSheet_Errors
// ---------------------------------------------------------------------------

func TestLoadStyleSheet_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown heading key",
			content: "headings:\n  h7:\n    sizePt: 8\n",
			wantErr: config.ErrUnknownHeading,
		},
		{
			name:    "heading key without h prefix",
			content: "headings:\n  title:\n    sizePt: 8\n",
			wantErr: config.ErrUnknownHeading,
		},
		{
			name:    "unknown top-level field",
			content: "fotn: Georgia\n",
			wantErr: config.ErrConfigParse,
		},
		{
			name:    "malformed yaml",
			content: "paragraph: [\n",
			wantErr: config.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeStyleFile(t, tt.content)
			_, err := config.LoadStyleSheet(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadStyleSheet() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadStyleSheet_NotFound(t *testing.T) {
	t.Parallel()

	_, err := config.LoadStyleSheet(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("LoadStyleSheet() error = %v, want ErrConfigNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestLoadStyleSheet_RoundTrip - Overridden sheet still validates
// ---------------------------------------------------------------------------

func TestLoadStyleSheet_RoundTrip(t *testing.T) {
	t.Parallel()

	path := writeStyleFile(t, `
paragraph:
  alignment: justify
hyperlink:
  color: "112233"
`)

	sheet, err := config.LoadStyleSheet(path)
	if err != nil {
		t.Fatalf("LoadStyleSheet() error = %v", err)
	}
	if _, err := html2docx.NewConverter(html2docx.WithStyleSheet(sheet)); err != nil {
		t.Errorf("NewConverter() rejected loaded sheet: %v", err)
	}
}
