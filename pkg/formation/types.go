package formation

import "strings"

// Export types and orientations understood by the assembler. Any other
// export_type is passed straight to the rasterizer as a format name.
const (
	ExportWeb = "web"

	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"

	DefaultScaleFactor = 1.0
	DefaultBorder      = 50
)

// Formation is the authored scene: export settings, field, colours and every
// token placed on the pitch.
type Formation struct {
	// Source records where the formation was read from. It is not part of the
	// YAML document.
	Source string `yaml:"-"`

	Export  Export            `yaml:"export"`
	Field   Field             `yaml:"field"`
	Colors  map[string]string `yaml:"colors"`
	Theme   Theme             `yaml:"theme"`
	Players []Player          `yaml:"players"`
	Disc    *Disc             `yaml:"disc"`
	Markers []Marker          `yaml:"markers"`
	Cones   []Cone            `yaml:"cones"`
}

// Export controls naming and the post-write export stage.
type Export struct {
	Type        *string  `yaml:"export_type"`
	Name        *string  `yaml:"export_name"`
	ScaleFactor *float64 `yaml:"scale_factor"`
	Orientation string   `yaml:"orientation"`
	Border      *int     `yaml:"border"`
}

// ExportType returns the trimmed export type, or an empty string when unset.
func (e Export) ExportType() string {
	if e.Type == nil {
		return ""
	}
	return strings.TrimSpace(*e.Type)
}

// ExportName returns the trimmed export name, or an empty string when unset.
func (e Export) ExportName() string {
	if e.Name == nil {
		return ""
	}
	return strings.TrimSpace(*e.Name)
}

// Scale returns the configured scale factor or DefaultScaleFactor.
func (e Export) Scale() float64 {
	if e.ScaleFactor == nil {
		return DefaultScaleFactor
	}
	return *e.ScaleFactor
}

// OrientationOrDefault returns the configured orientation or portrait.
func (e Export) OrientationOrDefault() string {
	if o := strings.TrimSpace(e.Orientation); o != "" {
		return o
	}
	return OrientationPortrait
}

// BorderOrDefault returns the rasterizer border in pixels.
func (e Export) BorderOrDefault() int {
	if e.Border == nil {
		return DefaultBorder
	}
	return *e.Border
}

// IsWeb reports whether the run should build a viewer link instead of
// rasterizing.
func (e Export) IsWeb() bool {
	return strings.EqualFold(e.ExportType(), ExportWeb)
}

// Field selects the pitch template and token radii.
type Field struct {
	Type *string `yaml:"type"`
}

// FieldType returns the lower-cased field type, or an empty string.
func (f Field) FieldType() string {
	if f.Type == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*f.Type))
}

// Theme names a colour palette and optional variant layered under Colors.
type Theme struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

// Player is a team member placed by its centre position in meters.
type Player struct {
	Name *string    `yaml:"name"`
	Team *string    `yaml:"team"`
	X    *float64   `yaml:"x"`
	Y    *float64   `yaml:"y"`
	Path []PathStep `yaml:"path"`
}

// Disc is the single disc token.
type Disc struct {
	X    *float64   `yaml:"x"`
	Y    *float64   `yaml:"y"`
	Path []PathStep `yaml:"path"`
}

// PathStep is either an absolute position (x, y) or a relative offset
// (dx, dy) from the previous waypoint, both in meters.
type PathStep struct {
	X  *float64 `yaml:"x"`
	Y  *float64 `yaml:"y"`
	DX *float64 `yaml:"dx"`
	DY *float64 `yaml:"dy"`
}

// Marker is a directional tick; Rotation is in degrees.
type Marker struct {
	X        *float64 `yaml:"x"`
	Y        *float64 `yaml:"y"`
	Rotation *float64 `yaml:"rotation"`
}

// Cone is a static field cone.
type Cone struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}
