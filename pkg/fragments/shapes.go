package fragments

import (
	"github.com/goliatone/go-formation/pkg/geometry"
	"github.com/goliatone/go-formation/pkg/templates"
)

// Shape is a typed attribute record for one fragment template.
type Shape interface {
	Template() string
	ShapeID() string
}

// Player is a team member token, or a faded ghost of one along its path.
type Player struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

func (Player) Template() string  { return templates.Player }
func (p Player) ShapeID() string { return p.ID }

// Disc is the disc token or one of its ghosts.
type Disc struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

func (Disc) Template() string  { return templates.Disc }
func (d Disc) ShapeID() string { return d.ID }

// Marker is a directional tick drawn as a plain line.
type Marker struct {
	ID    string  `json:"id"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color string  `json:"color"`
}

func (Marker) Template() string  { return templates.Marker }
func (m Marker) ShapeID() string { return m.ID }

// Cone is a static cone anchored at its top-left corner.
type Cone struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

func (Cone) Template() string  { return templates.Cone }
func (c Cone) ShapeID() string { return c.ID }

// Arrow links two consecutive positions of a path.
type Arrow struct {
	ID string  `json:"id"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func (Arrow) Template() string  { return templates.Arrow }
func (a Arrow) ShapeID() string { return a.ID }

// NewMarker builds a marker record from a computed segment.
func NewMarker(id string, seg geometry.Segment, color string) Marker {
	return Marker{ID: id, X1: seg.X1, Y1: seg.Y1, X2: seg.X2, Y2: seg.Y2, Color: color}
}

// NewArrow builds an arrow between two centre points.
func NewArrow(id string, from, to geometry.Point) Arrow {
	return Arrow{ID: id, X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y}
}
