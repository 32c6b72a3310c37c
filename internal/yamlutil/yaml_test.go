package yamlutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tdelacour/go-html2docx/internal/yamlutil"
)

type sample struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.Unmarshal([]byte("name: resume\nsize: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Name != "resume" || s.Size != 3 {
		t.Errorf("Unmarshal() = %+v, want {resume 3}", s)
	}
}

func TestUnmarshal_UnknownFieldIgnored(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.Unmarshal([]byte("name: x\nextra: y\n"), &s); err != nil {
		t.Errorf("Unmarshal() error = %v, want unknown fields ignored", err)
	}
}

func TestUnmarshalStrict_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.UnmarshalStrict([]byte("name: x\nextra: y\n"), &s); err == nil {
		t.Error("UnmarshalStrict() accepted an unknown field")
	}
}

func TestUnmarshal_InputValidation(t *testing.T) {
	t.Parallel()

	var s sample

	if err := yamlutil.Unmarshal(nil, &s); !errors.Is(err, yamlutil.ErrEmptyData) {
		t.Errorf("Unmarshal(nil) error = %v, want ErrEmptyData", err)
	}
	if err := yamlutil.Unmarshal([]byte("name: x"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("Unmarshal(.., nil) error = %v, want ErrNilDestination", err)
	}

	huge := bytes.Repeat([]byte("a"), yamlutil.MaxInputSize+1)
	if err := yamlutil.Unmarshal(huge, &s); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal(huge) error = %v, want ErrInputTooLarge", err)
	}
}
