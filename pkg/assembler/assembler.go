package assembler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formation/internal/prompt"
	"github.com/goliatone/go-formation/pkg/export"
	"github.com/goliatone/go-formation/pkg/formation"
	"github.com/goliatone/go-formation/pkg/fragments"
	"github.com/goliatone/go-formation/pkg/imaging"
	"github.com/goliatone/go-formation/pkg/palette"
	"github.com/goliatone/go-formation/pkg/pitch"
	"github.com/goliatone/go-formation/pkg/templates"
	"github.com/goliatone/go-formation/pkg/weblink"
)

// DiagramExt is the extension of the native draw.io file.
const DiagramExt = "drawio"

// Assembler turns a formation into a diagram file and runs the export stage.
type Assembler struct {
	templates   fs.FS
	templateDir string
	workDir     string

	rasterizer export.Rasterizer
	processor  imaging.PostProcessor
	links      LinkBuilder
	opener     weblink.Opener
	confirmer  prompt.Confirmer
	palettes   *palette.Catalog
	logger     Logger

	openBrowser bool
}

// Request names the formation to generate. When Formation is set it is used
// as is and Path only labels errors; otherwise the file at Path is loaded.
type Request struct {
	Path      string
	Formation *formation.Formation
}

// Result describes what a run produced. Warnings collects export, image and
// link failures, which never fail the run.
type Result struct {
	DiagramPath string
	ExportPath  string
	URL         string
	ImageSize   imaging.Size
	Warnings    []error
}

// New builds an Assembler with the bundled templates, the draw.io CLI, the
// default image processor and the system browser.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		templates:   templates.FS(),
		rasterizer:  export.NewDrawIO(export.DefaultBinary),
		processor:   imaging.New(),
		links:       weblink.New(),
		opener:      weblink.BrowserOpener{},
		palettes:    palette.Default(),
		logger:      defaultLogger(),
		openBrowser: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	// An empty work dir resolves to the process working directory, which keeps
	// diagram paths and link titles absolute.
	if abs, err := filepath.Abs(a.workDir); err == nil {
		a.workDir = abs
	}
	return a
}

// Generate runs one formation end to end. Input and template errors are
// returned before anything is written; export stage failures end up in
// Result.Warnings.
func (a *Assembler) Generate(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	f, err := a.load(req)
	if err != nil {
		return Result{}, err
	}

	p, err := pitch.Load(a.templateFS(), f.Field.FieldType())
	if err != nil {
		if errors.Is(err, pitch.ErrUnknownKind) {
			return Result{}, f.Fail("field.type", err)
		}
		return Result{}, err
	}
	cfg := p.Geometry()
	if err := cfg.Validate(); err != nil {
		return Result{}, &templates.Error{Name: p.Spec.Template, Err: err}
	}

	colors, err := a.palettes.Resolve(f.Theme.Name, f.Theme.Variant, f.Colors)
	if err != nil {
		return Result{}, f.Fail("theme", err)
	}

	builder, err := fragments.New(a.templates, a.templateDir)
	if err != nil {
		return Result{}, err
	}

	doc := p.Clone()
	container, err := pitch.Container(doc)
	if err != nil {
		return Result{}, &templates.Error{Name: p.Spec.Template, Err: err}
	}

	l := &layout{
		formation: f,
		geometry:  cfg,
		palette:   colors,
		builder:   builder,
		container: container,
	}
	if err := l.run(); err != nil {
		return Result{}, err
	}

	name := f.Export.ExportName()
	outDir := filepath.Join(a.workDir, name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("assembler: create output directory: %w", err)
	}

	diagramPath, err := UniquePath(outDir, name, DiagramExt)
	if err != nil {
		return Result{}, err
	}
	if err := writeDiagram(doc, diagramPath); err != nil {
		return Result{}, err
	}
	a.logger.Printf("diagram written: %s", diagramPath)

	res := Result{DiagramPath: diagramPath}
	if f.Export.IsWeb() {
		a.publish(ctx, &res)
		return res, nil
	}

	a.export(ctx, f, outDir, name, &res)
	return res, nil
}

func (a *Assembler) load(req Request) (*formation.Formation, error) {
	if req.Formation != nil {
		f := req.Formation
		if f.Source == "" {
			f.Source = req.Path
		}
		if err := f.Validate(); err != nil {
			return nil, err
		}
		return f, nil
	}
	if req.Path == "" {
		return nil, &formation.InputError{Err: errors.New("no formation file given")}
	}
	return formation.LoadFile(req.Path)
}

func (a *Assembler) templateFS() fs.FS {
	return templates.Overlay(a.templateDir, a.templates)
}

// publish builds the viewer link and hands it to the opener.
func (a *Assembler) publish(ctx context.Context, res *Result) {
	link, err := a.links.FromFile(res.DiagramPath)
	if err != nil {
		a.warn(res, err)
		return
	}
	res.URL = link

	if !a.openBrowser {
		a.logger.Printf("diagram link: %s", link)
		return
	}

	if a.confirmer != nil {
		ok, err := a.confirmer.Confirm(ctx, "Open diagram in browser?", true)
		if err != nil {
			a.warn(res, fmt.Errorf("assembler: confirm browser: %w", err))
			return
		}
		if !ok {
			a.logger.Printf("diagram link: %s", link)
			return
		}
	}

	a.logger.Printf("opening diagram in browser: %s", link)
	if err := a.opener.Open(link); err != nil {
		a.warn(res, err)
	}
}

// export rasterizes the diagram and post-processes the image. A failed
// export still attempts post-processing, since draw.io may exit non-zero
// after writing the file; a missing file surfaces as a processing warning.
func (a *Assembler) export(ctx context.Context, f *formation.Formation, outDir, name string, res *Result) {
	format := f.Export.ExportType()
	exportPath, err := UniquePath(outDir, name, format)
	if err != nil {
		a.warn(res, err)
		return
	}

	job := export.Job{
		Input:  res.DiagramPath,
		Output: exportPath,
		Format: format,
		Border: f.Export.BorderOrDefault(),
	}
	if err := a.rasterizer.Rasterize(ctx, job); err != nil {
		a.warn(res, err)
		if _, statErr := os.Stat(exportPath); statErr == nil {
			res.ExportPath = exportPath
		}
	} else {
		res.ExportPath = exportPath
		a.logger.Printf("exported: %s", exportPath)
	}

	opts := imaging.Options{
		ScaleFactor: f.Export.Scale(),
		Orientation: f.Export.OrientationOrDefault(),
	}
	if !imaging.Supports(exportPath) {
		if !opts.IsNoop() {
			a.warn(res, &imaging.ProcessingError{Path: exportPath, Op: "decode", Err: imaging.ErrUnsupportedFormat})
		}
		return
	}

	size, err := a.processor.Process(exportPath, opts)
	if err != nil {
		a.warn(res, err)
		return
	}
	res.ImageSize = size
	a.logger.Printf("image processed: %s (%s px)", exportPath, size)
}

func (a *Assembler) warn(res *Result, err error) {
	res.Warnings = append(res.Warnings, err)
	a.logger.Printf("warning: %v", err)
}
