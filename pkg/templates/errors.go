package templates

import "fmt"

// Error reports a missing, unreadable or malformed template. Template errors
// are fatal for a run.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("templates: %s: %v", e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
