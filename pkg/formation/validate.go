package formation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formation/pkg/geometry"
)

// The per-item checks below are called by the assembler as it reaches each
// item, so a bad entry late in the file is only reported once earlier items
// have been laid out. Nothing is written to disk before they all pass.

// Validate checks the mandatory player keys.
func (p Player) Validate() error {
	if p.Name == nil {
		return missing("name")
	}
	if p.Team == nil {
		return missing("team")
	}
	if p.X == nil {
		return missing("x")
	}
	if p.Y == nil {
		return missing("y")
	}
	return nil
}

// TeamName returns the team key used for colour lookup.
func (p Player) TeamName() string {
	if p.Team == nil {
		return ""
	}
	return strings.TrimSpace(*p.Team)
}

// Label returns the player's display name.
func (p Player) Label() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// Validate checks the mandatory disc keys. A nil disc is reported as a missing
// disc section.
func (d *Disc) Validate() error {
	if d == nil {
		return missing("disc")
	}
	if d.X == nil {
		return missing("x")
	}
	if d.Y == nil {
		return missing("y")
	}
	return nil
}

// Validate checks the mandatory marker keys.
func (m Marker) Validate() error {
	if m.X == nil {
		return missing("x")
	}
	if m.Y == nil {
		return missing("y")
	}
	if m.Rotation == nil {
		return missing("rotation")
	}
	return nil
}

// Validate checks the mandatory cone keys.
func (c Cone) Validate() error {
	if c.X == nil {
		return missing("x")
	}
	if c.Y == nil {
		return missing("y")
	}
	return nil
}

// Step converts the entry into a geometry step. Exactly one complete form,
// absolute (x, y) or relative (dx, dy), must be present.
func (s PathStep) Step() (geometry.Step, error) {
	absolute := s.X != nil && s.Y != nil
	relative := s.DX != nil && s.DY != nil
	partial := (s.X != nil) != (s.Y != nil) || (s.DX != nil) != (s.DY != nil)

	switch {
	case partial, absolute && relative:
		return geometry.Step{}, fmt.Errorf("%w: %s", ErrInvalidPathStep, s)
	case absolute:
		return geometry.Step{Abs: &geometry.Point{X: *s.X, Y: *s.Y}}, nil
	case relative:
		return geometry.Step{Rel: &geometry.Point{X: *s.DX, Y: *s.DY}}, nil
	default:
		return geometry.Step{}, fmt.Errorf("%w: %s", ErrInvalidPathStep, s)
	}
}

// String renders the keys that were present, for error messages.
func (s PathStep) String() string {
	var parts []string
	add := func(key string, v *float64) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s: %v", key, *v))
		}
	}
	add("x", s.X)
	add("y", s.Y)
	add("dx", s.DX)
	add("dy", s.DY)
	return "{" + strings.Join(parts, ", ") + "}"
}
