package formation

import (
	"io/fs"

	"github.com/goliatone/go-formation/pkg/templates"
)

// EmbeddedTemplates exposes the bundled pitch and fragment templates so
// callers can copy and restyle them for use with WithTemplateDir.
func EmbeddedTemplates() fs.FS {
	return templates.FS()
}
