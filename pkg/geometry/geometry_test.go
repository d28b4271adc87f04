package geometry_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-formation/pkg/geometry"
)

func outdoor() geometry.Config {
	return geometry.Config{
		Scale:        geometry.Scale,
		FieldWidthM:  37,
		FieldHeightM: 100,
		PlayerRadius: 15,
		DiscRadius:   10,
	}
}

func TestScalePosition_FlipsVerticalAxis(t *testing.T) {
	cfg := outdoor()

	cases := []struct {
		x, y float64
	}{
		{0, 0},
		{10, 50},
		{37, 100},
		{18.5, 0.25},
	}
	for _, tc := range cases {
		got := cfg.ScalePosition(tc.x, tc.y)
		want := geometry.Point{X: tc.x * cfg.Scale, Y: (cfg.FieldHeightM - tc.y) * cfg.Scale}
		if got != want {
			t.Fatalf("ScalePosition(%v, %v) = %+v, want %+v", tc.x, tc.y, got, want)
		}
	}
}

func TestTopLeftForRadius(t *testing.T) {
	cfg := outdoor()
	got := cfg.TopLeftForRadius(10, 50, cfg.PlayerRadius)
	want := geometry.Point{X: 85, Y: 485}
	if got != want {
		t.Fatalf("top-left mismatch: got %+v want %+v", got, want)
	}
}

func TestResolvePathStep_AbsoluteMatchesPlacement(t *testing.T) {
	cfg := outdoor()
	start := cfg.TopLeftForRadius(12, 40, cfg.PlayerRadius)

	got, err := cfg.ResolvePathStep(start, geometry.Step{Abs: &geometry.Point{X: 12, Y: 40}}, cfg.PlayerRadius)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != start {
		t.Fatalf("absolute step drifted from placement: got %+v want %+v", got, start)
	}
}

func TestResolvePathStep_RelativeComposition(t *testing.T) {
	cfg := outdoor()
	origin := cfg.TopLeftForRadius(5, 5, cfg.PlayerRadius)

	first, err := cfg.ResolvePathStep(origin, geometry.Step{Rel: &geometry.Point{X: 1, Y: 0}}, cfg.PlayerRadius)
	if err != nil {
		t.Fatalf("first step: %v", err)
	}
	second, err := cfg.ResolvePathStep(first, geometry.Step{Rel: &geometry.Point{X: 0, Y: 1}}, cfg.PlayerRadius)
	if err != nil {
		t.Fatalf("second step: %v", err)
	}

	direct, err := cfg.ResolvePathStep(origin, geometry.Step{Abs: &geometry.Point{X: 6, Y: 6}}, cfg.PlayerRadius)
	if err != nil {
		t.Fatalf("absolute step: %v", err)
	}

	if diff := cmp.Diff(direct, second, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("relative composition mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePathStep_Invalid(t *testing.T) {
	cfg := outdoor()
	steps := []geometry.Step{
		{},
		{Abs: &geometry.Point{X: 1, Y: 1}, Rel: &geometry.Point{X: 1, Y: 1}},
	}
	for i, step := range steps {
		_, err := cfg.ResolvePathStep(geometry.Point{}, step, cfg.PlayerRadius)
		if !errors.Is(err, geometry.ErrInvalidPathEntry) {
			t.Fatalf("step %d: expected ErrInvalidPathEntry, got %v", i, err)
		}
	}
}

func TestMarkerEndpoints_ZeroAngle(t *testing.T) {
	cfg := outdoor()
	centre := cfg.ScalePosition(10, 50)

	seg := cfg.MarkerEndpoints(centre, 0)

	if sep := seg.X2 - seg.X1; math.Abs(sep-2*cfg.PlayerRadius) > 1e-9 {
		t.Fatalf("horizontal separation = %v, want %v", sep, 2*cfg.PlayerRadius)
	}
	if math.Abs(seg.Y1-seg.Y2) > 1e-9 {
		t.Fatalf("endpoints not level: y1=%v y2=%v", seg.Y1, seg.Y2)
	}
	wantY := centre.Y - geometry.MarkerOffsetFactor*cfg.PlayerRadius
	if math.Abs(seg.Y1-wantY) > 1e-9 {
		t.Fatalf("vertical offset = %v, want %v", seg.Y1, wantY)
	}
	midX := (seg.X1 + seg.X2) / 2
	if math.Abs(midX-centre.X) > 1e-9 {
		t.Fatalf("tick not centred on anchor: mid=%v centre=%v", midX, centre.X)
	}
}

func TestMarkerEndpoints_RightAngle(t *testing.T) {
	cfg := outdoor()
	centre := geometry.Point{X: 100, Y: 100}

	seg := cfg.MarkerEndpoints(centre, 90)

	want := geometry.Segment{
		X1: 100 + 22.5, Y1: 100 - 15,
		X2: 100 + 22.5, Y2: 100 + 15,
	}
	if diff := cmp.Diff(want, seg, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("segment mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := outdoor().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	bad := outdoor()
	bad.FieldHeightM = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero field height")
	}
}
