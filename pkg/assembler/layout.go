package assembler

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/goliatone/go-formation/pkg/formation"
	"github.com/goliatone/go-formation/pkg/fragments"
	"github.com/goliatone/go-formation/pkg/geometry"
	"github.com/goliatone/go-formation/pkg/palette"
)

// First ids per shape family. Ghost and arrow ids derive from their owner.
const (
	firstPlayerID = 10
	discID        = "99"
	firstMarkerID = 100
	firstConeID   = 200
)

// layout appends every formation item to the container in document order:
// players, disc, markers, cones. Items are checked as they are reached.
type layout struct {
	formation *formation.Formation
	geometry  geometry.Config
	palette   palette.Palette
	builder   *fragments.Builder
	container *etree.Element
}

func (l *layout) run() error {
	for i, p := range l.formation.Players {
		if err := l.player(i, p); err != nil {
			return err
		}
	}
	if err := l.disc(); err != nil {
		return err
	}
	for i, m := range l.formation.Markers {
		if err := l.marker(i, m); err != nil {
			return err
		}
	}
	for i, c := range l.formation.Cones {
		if err := l.cone(i, c); err != nil {
			return err
		}
	}
	return nil
}

func (l *layout) player(idx int, p formation.Player) error {
	field := fmt.Sprintf("players[%d]", idx)
	if err := p.Validate(); err != nil {
		return l.formation.Fail(field, err)
	}

	id := strconv.Itoa(firstPlayerID + idx)
	radius := l.geometry.PlayerRadius
	color := l.palette.Color(p.TeamName())
	anchor := l.geometry.TopLeftForRadius(*p.X, *p.Y, radius)

	err := l.builder.Append(l.container, fragments.Player{
		ID:    id,
		Name:  p.Label(),
		X:     anchor.X,
		Y:     anchor.Y,
		Size:  2 * radius,
		Color: color,
	})
	if err != nil {
		return err
	}

	return l.path(field, anchor, radius, p.Path, func(i int, at geometry.Point) fragments.Shape {
		return fragments.Player{
			ID:    fmt.Sprintf("%s_%d", id, i),
			Name:  p.Label(),
			X:     at.X,
			Y:     at.Y,
			Size:  2 * radius,
			Color: palette.Fade(color),
		}
	}, func(i int) string {
		return fmt.Sprintf("arrow_%s_%d", id, i)
	})
}

func (l *layout) disc() error {
	d := l.formation.Disc
	if err := d.Validate(); err != nil {
		return l.formation.Fail("disc", err)
	}

	radius := l.geometry.DiscRadius
	color := l.palette.Color(palette.RoleDisc)
	anchor := l.geometry.TopLeftForRadius(*d.X, *d.Y, radius)

	err := l.builder.Append(l.container, fragments.Disc{
		ID:    discID,
		X:     anchor.X,
		Y:     anchor.Y,
		Size:  2 * radius,
		Color: color,
	})
	if err != nil {
		return err
	}

	return l.path("disc", anchor, radius, d.Path, func(i int, at geometry.Point) fragments.Shape {
		return fragments.Disc{
			ID:    fmt.Sprintf("disc_%d", i),
			X:     at.X,
			Y:     at.Y,
			Size:  2 * radius,
			Color: palette.Fade(color),
		}
	}, func(i int) string {
		return fmt.Sprintf("disc_arrow_%d", i)
	})
}

// path lays out the ghosts and connecting arrows of a movement trail that
// starts at anchor. Arrows join shape centres.
func (l *layout) path(
	owner string,
	anchor geometry.Point,
	radius float64,
	steps []formation.PathStep,
	ghost func(i int, at geometry.Point) fragments.Shape,
	arrowID func(i int) string,
) error {
	prev := anchor
	for n, raw := range steps {
		i := n + 1
		field := fmt.Sprintf("%s.path[%d]", owner, n)

		step, err := raw.Step()
		if err != nil {
			return l.formation.Fail(field, err)
		}
		next, err := l.geometry.ResolvePathStep(prev, step, radius)
		if err != nil {
			return l.formation.Fail(field, err)
		}

		if err := l.builder.Append(l.container, ghost(i, next)); err != nil {
			return err
		}
		arrow := fragments.NewArrow(arrowID(i), prev.Offset(radius), next.Offset(radius))
		if err := l.builder.Append(l.container, arrow); err != nil {
			return err
		}
		prev = next
	}
	return nil
}

func (l *layout) marker(idx int, m formation.Marker) error {
	if err := m.Validate(); err != nil {
		return l.formation.Fail(fmt.Sprintf("markers[%d]", idx), err)
	}
	centre := l.geometry.ScalePosition(*m.X, *m.Y)
	seg := l.geometry.MarkerEndpoints(centre, *m.Rotation)
	id := strconv.Itoa(firstMarkerID + idx)
	return l.builder.Append(l.container, fragments.NewMarker(id, seg, l.palette.Color(palette.RoleMarker)))
}

// cone is anchored at the scaled position itself and sized by the player
// radius.
func (l *layout) cone(idx int, c formation.Cone) error {
	if err := c.Validate(); err != nil {
		return l.formation.Fail(fmt.Sprintf("cones[%d]", idx), err)
	}
	at := l.geometry.ScalePosition(*c.X, *c.Y)
	return l.builder.Append(l.container, fragments.Cone{
		ID:    strconv.Itoa(firstConeID + idx),
		X:     at.X,
		Y:     at.Y,
		Size:  l.geometry.PlayerRadius,
		Color: l.palette.Color(palette.RoleCone),
	})
}
