package formation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formation/pkg/geometry"
)

var (
	// ErrEmptyDocument is returned for files with no YAML content.
	ErrEmptyDocument = errors.New("formation: document is empty")
	// ErrMissingField reports an absent required key.
	ErrMissingField = errors.New("formation: missing required field")
	// ErrInvalidPathStep reports a path entry that is neither a complete
	// absolute nor a complete relative step. It is the geometry sentinel so
	// callers can match either layer.
	ErrInvalidPathStep = geometry.ErrInvalidPathEntry
	// ErrUnknownFieldType reports a field.type other than indoor/outdoor.
	ErrUnknownFieldType = errors.New("formation: unknown field type")
)

// InputError wraps any failure caused by the formation file itself. It is
// always fatal for a run.
type InputError struct {
	Source string
	Field  string
	Err    error
}

func (e *InputError) Error() string {
	var b strings.Builder
	b.WriteString("formation: ")
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	if e.Err != nil {
		b.WriteString(strings.TrimPrefix(e.Err.Error(), "formation: "))
	}
	return b.String()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Fail attributes err to the named field of f.
func (f *Formation) Fail(field string, err error) error {
	if err == nil {
		return nil
	}
	var existing *InputError
	if errors.As(err, &existing) {
		return err
	}
	source := ""
	if f != nil {
		source = f.Source
	}
	return &InputError{Source: source, Field: field, Err: err}
}

func missing(field string) error {
	return fmt.Errorf("%w %q", ErrMissingField, field)
}
