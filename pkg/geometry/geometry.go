package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Scale is the number of diagram pixels drawn per field meter.
const Scale = 10.0

// MarkerOffsetFactor positions a marker tick away from its anchor, in
// multiples of the player radius.
const MarkerOffsetFactor = 1.5

// ErrInvalidPathEntry is returned when a step carries neither or both of an
// absolute and a relative position.
var ErrInvalidPathEntry = errors.New("geometry: invalid path entry")

// Point is a position in diagram pixels (y grows downwards).
type Point struct {
	X float64
	Y float64
}

// Offset shifts both axes by d.
func (p Point) Offset(d float64) Point {
	return Point{X: p.X + d, Y: p.Y + d}
}

// Segment is a straight line between two pixel positions.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Step is one waypoint of a path in field meters. Exactly one of Abs or Rel is
// expected to be set.
type Step struct {
	Abs *Point
	Rel *Point
}

// Config carries the constants every transform depends on. It is built once
// per run from the selected pitch and passed explicitly.
type Config struct {
	Scale        float64
	FieldWidthM  float64
	FieldHeightM float64
	PlayerRadius float64
	DiscRadius   float64
}

// Validate reports configurations that would produce degenerate coordinates.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("geometry: scale must be positive, got %v", c.Scale)
	}
	if c.FieldWidthM <= 0 || c.FieldHeightM <= 0 {
		return fmt.Errorf("geometry: field dimensions must be positive, got %vx%v", c.FieldWidthM, c.FieldHeightM)
	}
	if c.PlayerRadius <= 0 || c.DiscRadius <= 0 {
		return fmt.Errorf("geometry: radii must be positive, got player=%v disc=%v", c.PlayerRadius, c.DiscRadius)
	}
	return nil
}

// ScalePosition converts field meters (y up) to diagram pixels (y down).
func (c Config) ScalePosition(x, y float64) Point {
	return Point{
		X: x * c.Scale,
		Y: (c.FieldHeightM - y) * c.Scale,
	}
}

// TopLeftForRadius converts a centre position in meters to the top-left
// anchor of a shape whose bounding box has the given pixel radius.
func (c Config) TopLeftForRadius(x, y, radius float64) Point {
	return c.ScalePosition(x, y).Offset(-radius)
}

// ResolvePathStep returns the anchor reached by step, starting from prev.
// Relative deltas are applied in pixel space against the already flipped
// previous anchor, so dy is negated and dx is not.
func (c Config) ResolvePathStep(prev Point, step Step, radius float64) (Point, error) {
	switch {
	case step.Abs != nil && step.Rel != nil:
		return Point{}, ErrInvalidPathEntry
	case step.Abs != nil:
		return c.TopLeftForRadius(step.Abs.X, step.Abs.Y, radius), nil
	case step.Rel != nil:
		return Point{
			X: prev.X + step.Rel.X*c.Scale,
			Y: prev.Y - step.Rel.Y*c.Scale,
		}, nil
	default:
		return Point{}, ErrInvalidPathEntry
	}
}

// MarkerEndpoints computes the directional tick drawn for a marker anchored at
// centre and pointing at angleDeg.
func (c Config) MarkerEndpoints(centre Point, angleDeg float64) Segment {
	radial := radians(angleDeg - 90)
	tangent := radians(angleDeg)

	offset := MarkerOffsetFactor * c.PlayerRadius
	mx := centre.X + offset*math.Cos(radial)
	my := centre.Y + offset*math.Sin(radial)

	half := c.PlayerRadius
	dx := half * math.Cos(tangent)
	dy := half * math.Sin(tangent)

	return Segment{
		X1: mx - dx,
		Y1: my - dy,
		X2: mx + dx,
		Y2: my + dy,
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
