package palette_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formation/pkg/palette"
)

func TestResolve_DefaultsFilled(t *testing.T) {
	p, err := palette.Resolve("", "", map[string]string{"offense": "#112233"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := map[string]string{
		"offense": "#112233",
		"defense": "#e74c3c",
		"disc":    "#FFD700",
		"marker":  "#000000",
		"cone":    "#FFA500",
	}
	if diff := cmp.Diff(want, p.Colors()); diff != "" {
		t.Fatalf("colors mismatch (-want +got):\n%s", diff)
	}
	if p.Theme != palette.DefaultTheme {
		t.Fatalf("theme mismatch: %q", p.Theme)
	}
}

func TestResolve_CustomTeamAndFallback(t *testing.T) {
	p, err := palette.Resolve("classic", "", map[string]string{"coaches": "#00FF00", "blank": " "})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := p.Color("coaches"); got != "#00FF00" {
		t.Fatalf("custom team colour mismatch: %q", got)
	}
	if got := p.Color("spectators"); got != palette.Fallback {
		t.Fatalf("unknown team should fall back, got %q", got)
	}
	if got := p.Color("blank"); got != palette.Fallback {
		t.Fatalf("blank override should be ignored, got %q", got)
	}
}

func TestResolve_VariantLayering(t *testing.T) {
	p, err := palette.Resolve("Classic", "print", map[string]string{"disc": "#ABCDEF"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := p.Color("offense"); got != "#1F4E79" {
		t.Fatalf("variant token not applied: %q", got)
	}
	if got := p.Color("marker"); got != "#000000" {
		t.Fatalf("base token lost under variant: %q", got)
	}
	if got := p.Color("disc"); got != "#ABCDEF" {
		t.Fatalf("formation colour should win over variant: %q", got)
	}
}

func TestResolve_Errors(t *testing.T) {
	if _, err := palette.Resolve("neon", "", nil); !errors.Is(err, palette.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := palette.Resolve("mono", "print", nil); !errors.Is(err, palette.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestCatalog_CustomManifest(t *testing.T) {
	catalog := palette.NewCatalog(&theme.Manifest{
		Name:   "club",
		Tokens: map[string]string{"offense": "#010101"},
	})
	if diff := cmp.Diff([]string{"club"}, catalog.Themes()); diff != "" {
		t.Fatalf("themes mismatch (-want +got):\n%s", diff)
	}

	p, err := catalog.Resolve("club", "", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Color("offense") != "#010101" || p.Color("defense") != palette.Fallback {
		t.Fatalf("custom manifest not applied: %v", p.Colors())
	}
}

func TestFade(t *testing.T) {
	if got := palette.Fade("#3498db"); got != "#3498db7F" {
		t.Fatalf("fade mismatch: %q", got)
	}
}
