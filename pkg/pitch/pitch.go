package pitch

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/goliatone/go-formation/pkg/geometry"
	"github.com/goliatone/go-formation/pkg/templates"
)

// ErrUnknownKind is returned for field types without a pitch template.
var ErrUnknownKind = errors.New("pitch: unknown field type")

// Kind selects the pitch template and token radii.
type Kind string

const (
	Indoor  Kind = "indoor"
	Outdoor Kind = "outdoor"
)

// Spec binds a field kind to its template and radii in pixels.
type Spec struct {
	Kind         Kind
	Template     string
	PlayerRadius float64
	DiscRadius   float64
}

var specs = map[Kind]Spec{
	Indoor: {
		Kind:         Indoor,
		Template:     templates.PitchIndoor,
		PlayerRadius: 10,
		DiscRadius:   7.5,
	},
	Outdoor: {
		Kind:         Outdoor,
		Template:     templates.PitchOutdoor,
		PlayerRadius: 15,
		DiscRadius:   10,
	},
}

// Lookup returns the spec for a field type (case-insensitive).
func Lookup(fieldType string) (Spec, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(fieldType)))
	spec, ok := specs[kind]
	if !ok {
		return Spec{}, fmt.Errorf("%w %q", ErrUnknownKind, fieldType)
	}
	return spec, nil
}

// Dimensions is the playing area in meters, derived from the template page
// size.
type Dimensions struct {
	WidthM  float64
	HeightM float64
}

// Pitch is a parsed pitch template. Document must not be mutated; use Clone.
type Pitch struct {
	Spec       Spec
	Document   *etree.Document
	Dimensions Dimensions
}

// Load parses the pitch template for fieldType from fsys.
func Load(fsys fs.FS, fieldType string) (*Pitch, error) {
	spec, err := Lookup(fieldType)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		return nil, &templates.Error{Name: spec.Template, Err: errors.New("no template filesystem")}
	}

	data, err := fs.ReadFile(fsys, spec.Template)
	if err != nil {
		return nil, &templates.Error{Name: spec.Template, Err: err}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &templates.Error{Name: spec.Template, Err: fmt.Errorf("parse: %w", err)}
	}

	dims, err := pageDimensions(doc)
	if err != nil {
		return nil, &templates.Error{Name: spec.Template, Err: err}
	}
	if _, err := Container(doc); err != nil {
		return nil, &templates.Error{Name: spec.Template, Err: err}
	}

	return &Pitch{Spec: spec, Document: doc, Dimensions: dims}, nil
}

// Geometry returns the transform configuration for this pitch.
func (p *Pitch) Geometry() geometry.Config {
	return geometry.Config{
		Scale:        geometry.Scale,
		FieldWidthM:  p.Dimensions.WidthM,
		FieldHeightM: p.Dimensions.HeightM,
		PlayerRadius: p.Spec.PlayerRadius,
		DiscRadius:   p.Spec.DiscRadius,
	}
}

// Clone returns a deep copy of the template to build a diagram into.
func (p *Pitch) Clone() *etree.Document {
	return p.Document.Copy()
}

// Container returns the node generated shapes are appended to.
func Container(doc *etree.Document) (*etree.Element, error) {
	if doc == nil {
		return nil, errors.New("pitch: document is nil")
	}
	root := doc.FindElement(".//root")
	if root == nil {
		return nil, errors.New("pitch: template has no <root> shape container")
	}
	return root, nil
}

func pageDimensions(doc *etree.Document) (Dimensions, error) {
	model := doc.FindElement(".//mxGraphModel")
	if model == nil {
		return Dimensions{}, errors.New("pitch: template has no <mxGraphModel>")
	}
	width, err := pageAttr(model, "pageWidth")
	if err != nil {
		return Dimensions{}, err
	}
	height, err := pageAttr(model, "pageHeight")
	if err != nil {
		return Dimensions{}, err
	}
	return Dimensions{
		WidthM:  width / geometry.Scale,
		HeightM: height / geometry.Scale,
	}, nil
}

func pageAttr(el *etree.Element, key string) (float64, error) {
	raw := strings.TrimSpace(el.SelectAttrValue(key, ""))
	if raw == "" {
		return 0, fmt.Errorf("pitch: missing %s", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("pitch: invalid %s %q: %w", key, raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("pitch: %s must be positive, got %v", key, v)
	}
	return v, nil
}
