package formation

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formation/pkg/assembler"
	pkgformation "github.com/goliatone/go-formation/pkg/formation"
	"github.com/goliatone/go-formation/pkg/palette"
)

// Request aliases assembler.Request for callers of the root package.
type Request = assembler.Request

// Result aliases assembler.Result.
type Result = assembler.Result

// Option aliases assembler.Option so options can be passed through unchanged.
type Option = assembler.Option

// Formation aliases the parsed formation document.
type Formation = pkgformation.Formation

// NewAssembler exposes the assembler constructor from the top-level module.
func NewAssembler(options ...Option) *assembler.Assembler {
	return assembler.New(options...)
}

// LoadFile parses and checks a formation file without generating anything.
func LoadFile(path string) (*Formation, error) {
	return pkgformation.LoadFile(path)
}

// GenerateFile loads the formation at path, writes the diagram and runs the
// configured export. It is the simplest entry point for callers that just
// want the files on disk.
func GenerateFile(ctx context.Context, path string, options ...Option) (Result, error) {
	return assembler.New(options...).Generate(ctx, Request{Path: path})
}

// Generate renders an already parsed formation.
func Generate(ctx context.Context, f *Formation, options ...Option) (Result, error) {
	return assembler.New(options...).Generate(ctx, Request{Formation: f})
}

// WithThemes registers additional palette manifests next to the bundled
// ones. A manifest named like a bundled theme replaces it.
func WithThemes(manifests ...*theme.Manifest) Option {
	all := append(palette.Builtins(), manifests...)
	return assembler.WithPalettes(palette.NewCatalog(all...))
}

// WithWorkDir forwards assembler.WithWorkDir.
func WithWorkDir(dir string) Option {
	return assembler.WithWorkDir(dir)
}

// WithTemplateDir forwards assembler.WithTemplateDir.
func WithTemplateDir(dir string) Option {
	return assembler.WithTemplateDir(dir)
}
