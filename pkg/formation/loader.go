package formation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field types with a matching pitch template.
const (
	FieldIndoor  = "indoor"
	FieldOutdoor = "outdoor"
)

// LoadFile reads and parses the formation at path. Only the document-level
// keys are checked here; per-item checks run as items are assembled.
func LoadFile(path string) (*Formation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InputError{Source: path, Err: fmt.Errorf("file not found")}
		}
		return nil, &InputError{Source: path, Err: fmt.Errorf("read: %w", err)}
	}
	return Load(data, path)
}

// Load parses a formation from raw YAML. source is only used in errors.
func Load(data []byte, source string) (*Formation, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &InputError{Source: source, Err: ErrEmptyDocument}
	}

	var f Formation
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &InputError{Source: source, Err: fmt.Errorf("parse yaml: %w", err)}
	}
	f.Source = source

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the keys every run needs before any geometry or rendering
// work starts.
func (f *Formation) Validate() error {
	if f == nil {
		return &InputError{Err: ErrEmptyDocument}
	}
	if f.Export.ExportType() == "" {
		return f.Fail("export", missing("export_type"))
	}
	if f.Export.ExportName() == "" {
		return f.Fail("export", missing("export_name"))
	}
	switch f.Field.FieldType() {
	case "":
		return f.Fail("field", missing("type"))
	case FieldIndoor, FieldOutdoor:
	default:
		return f.Fail("field.type", fmt.Errorf("%w %q", ErrUnknownFieldType, *f.Field.Type))
	}
	return nil
}
