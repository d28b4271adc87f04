package fragments

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formation/pkg/render/template"
	"github.com/goliatone/go-formation/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formation/pkg/templates"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// Builder renders shape records through fragment templates and appends the
// resulting elements to a diagram tree.
type Builder struct {
	engine template.TemplateRenderer
}

// NewBuilder wraps an existing template engine.
func NewBuilder(engine template.TemplateRenderer) *Builder {
	return &Builder{engine: engine}
}

// New builds a Builder over fsys. When baseDir is set, templates found there
// override the ones in fsys.
func New(fsys fs.FS, baseDir string) (*Builder, error) {
	opts := []gotemplate.Option{gotemplate.WithFS(fsys)}
	if baseDir != "" {
		opts = append(opts, gotemplate.WithBaseDir(baseDir))
	}
	engine, err := gotemplate.New(opts...)
	if err != nil {
		return nil, &templates.Error{Name: "fragments", Err: err}
	}
	return NewBuilder(engine), nil
}

// Render produces the element for shape without attaching it anywhere.
func (b *Builder) Render(shape Shape) (*etree.Element, error) {
	if b == nil || b.engine == nil {
		return nil, errors.New("fragments: builder has no template engine")
	}
	if shape == nil {
		return nil, errors.New("fragments: shape is nil")
	}

	name := shape.Template()
	if p, ok := shape.(Player); ok {
		p.Name = SanitizeLabel(p.Name)
		shape = p
	}

	out, err := b.engine.RenderTemplate(name, shape)
	if err != nil {
		return nil, &templates.Error{Name: name, Err: err}
	}

	frag := etree.NewDocument()
	if err := frag.ReadFromString(out); err != nil {
		return nil, &templates.Error{Name: name, Err: fmt.Errorf("shape %q: parse rendered fragment: %w", shape.ShapeID(), err)}
	}
	if n := len(frag.ChildElements()); n != 1 {
		return nil, &templates.Error{Name: name, Err: fmt.Errorf("shape %q: rendered %d root elements, want 1", shape.ShapeID(), n)}
	}
	return frag.Root().Copy(), nil
}

// Append renders shape and adds it as the last child of container.
func (b *Builder) Append(container *etree.Element, shape Shape) error {
	if container == nil {
		return errors.New("fragments: container is nil")
	}
	el, err := b.Render(shape)
	if err != nil {
		return err
	}
	container.AddChild(el)
	return nil
}

// SanitizeLabel strips markup from a label. draw.io renders values with
// html=1, so the result is HTML text; the template engine then escapes it
// for XML.
func SanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(labelSanitizer().Sanitize(trimmed))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
