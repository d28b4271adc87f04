package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Colour roles with built-in defaults. Team names other than offense/defense
// are looked up the same way and fall back to Fallback.
const (
	RoleOffense = "offense"
	RoleDefense = "defense"
	RoleDisc    = "disc"
	RoleMarker  = "marker"
	RoleCone    = "cone"

	// FadeSuffix is appended to a hex colour for path ghosts (about 50% alpha).
	FadeSuffix = "7F"
	Fallback   = "#000000"

	DefaultTheme = "classic"
)

var (
	// ErrUnknownTheme is returned for theme names missing from the catalog.
	ErrUnknownTheme = errors.New("palette: unknown theme")
	// ErrUnknownVariant is returned for variants the theme does not define.
	ErrUnknownVariant = errors.New("palette: unknown theme variant")
)

// Fade returns the translucent form of colour used for path ghosts.
func Fade(colour string) string {
	return colour + FadeSuffix
}

// Palette maps colour roles to colours for one run.
type Palette struct {
	Theme   string
	Variant string
	colors  map[string]string
}

// Color returns the colour for role, or Fallback when none is defined.
func (p Palette) Color(role string) string {
	if c, ok := p.colors[strings.TrimSpace(role)]; ok && c != "" {
		return c
	}
	return Fallback
}

// Colors returns a copy of the resolved role map.
func (p Palette) Colors() map[string]string {
	out := make(map[string]string, len(p.colors))
	for k, v := range p.colors {
		out[k] = v
	}
	return out
}

// Catalog holds theme manifests whose tokens are colour roles.
type Catalog struct {
	manifests map[string]*theme.Manifest
}

// NewCatalog builds a catalog from manifests. Later manifests replace earlier
// ones with the same name.
func NewCatalog(manifests ...*theme.Manifest) *Catalog {
	c := &Catalog{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, m := range manifests {
		if m == nil || strings.TrimSpace(m.Name) == "" {
			continue
		}
		c.manifests[strings.ToLower(strings.TrimSpace(m.Name))] = m
	}
	return c
}

// Default returns the catalog of built-in themes.
func Default() *Catalog {
	return NewCatalog(Builtins()...)
}

// Themes lists the catalog's theme names in order.
func (c *Catalog) Themes() []string {
	names := make([]string, 0, len(c.manifests))
	for name := range c.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve layers the theme tokens, the variant tokens and finally the
// formation's own colours. An empty name selects DefaultTheme.
func (c *Catalog) Resolve(name, variant string, overrides map[string]string) (Palette, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultTheme
	}
	manifest, ok := c.manifests[key]
	if !ok {
		return Palette{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, name, strings.Join(c.Themes(), ", "))
	}

	colors := make(map[string]string, len(manifest.Tokens)+len(overrides))
	for role, colour := range manifest.Tokens {
		colors[role] = colour
	}

	variant = strings.TrimSpace(variant)
	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return Palette{}, fmt.Errorf("%w %q for theme %q", ErrUnknownVariant, variant, manifest.Name)
		}
		for role, colour := range v.Tokens {
			colors[role] = colour
		}
	}

	for role, colour := range overrides {
		role = strings.TrimSpace(role)
		colour = strings.TrimSpace(colour)
		if role == "" || colour == "" {
			continue
		}
		colors[role] = colour
	}

	return Palette{Theme: manifest.Name, Variant: variant, colors: colors}, nil
}

// Resolve uses the built-in catalog.
func Resolve(name, variant string, overrides map[string]string) (Palette, error) {
	return Default().Resolve(name, variant, overrides)
}

// Builtins returns fresh copies of the bundled theme manifests.
func Builtins() []*theme.Manifest {
	return []*theme.Manifest{
		{
			Name:    "classic",
			Version: "1.0.0",
			Tokens: map[string]string{
				RoleOffense: "#3498db",
				RoleDefense: "#e74c3c",
				RoleDisc:    "#FFD700",
				RoleMarker:  "#000000",
				RoleCone:    "#FFA500",
			},
			Variants: map[string]theme.Variant{
				"print": {
					Tokens: map[string]string{
						RoleOffense: "#1F4E79",
						RoleDefense: "#8B1A1A",
						RoleDisc:    "#B8860B",
						RoleCone:    "#CC6600",
					},
				},
			},
		},
		{
			Name:    "mono",
			Version: "1.0.0",
			Tokens: map[string]string{
				RoleOffense: "#FFFFFF",
				RoleDefense: "#404040",
				RoleDisc:    "#000000",
				RoleMarker:  "#000000",
				RoleCone:    "#808080",
			},
		},
	}
}
