package templates

import (
	"embed"
	"io/fs"
)

//go:embed files/*.drawio files/*.tpl
var embeddedTemplates embed.FS

// Template names resolved against the template filesystem. Fragment names are
// given without extension; the engine appends ".tpl".
const (
	PitchOutdoor = "pitch_outdoor.drawio"
	PitchIndoor  = "pitch_indoor.drawio"

	Player = "player"
	Disc   = "disc"
	Marker = "marker"
	Cone   = "cone"
	Arrow  = "arrow"
)

// FS returns the bundled pitch and fragment templates. Callers may pass a
// directory with the same file names instead to restyle the output.
func FS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "files")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
