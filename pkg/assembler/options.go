package assembler

import (
	"io/fs"
	"log"
	"strings"

	"github.com/goliatone/go-formation/internal/prompt"
	"github.com/goliatone/go-formation/pkg/export"
	"github.com/goliatone/go-formation/pkg/imaging"
	"github.com/goliatone/go-formation/pkg/palette"
	"github.com/goliatone/go-formation/pkg/weblink"
)

// Option mutates the assembler during construction.
type Option func(*Assembler)

// Logger receives progress and warning lines.
type Logger interface {
	Printf(format string, args ...any)
}

// LinkBuilder turns a written diagram file into a viewer URL.
type LinkBuilder interface {
	FromFile(path string) (string, error)
}

// WithTemplatesFS replaces the bundled pitch and fragment templates.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(a *Assembler) {
		if fsys != nil {
			a.templates = fsys
		}
	}
}

// WithTemplateDir serves templates from dir first, falling back to the
// configured template filesystem for names missing there.
func WithTemplateDir(dir string) Option {
	return func(a *Assembler) {
		a.templateDir = strings.TrimSpace(dir)
	}
}

// WithWorkDir sets the directory output folders are created in. It defaults
// to the process working directory; relative paths are made absolute.
func WithWorkDir(dir string) Option {
	return func(a *Assembler) {
		a.workDir = strings.TrimSpace(dir)
	}
}

// WithRasterizer overrides the draw.io CLI export.
func WithRasterizer(r export.Rasterizer) Option {
	return func(a *Assembler) {
		if r != nil {
			a.rasterizer = r
		}
	}
}

// WithPostProcessor overrides the image post-processor.
func WithPostProcessor(p imaging.PostProcessor) Option {
	return func(a *Assembler) {
		if p != nil {
			a.processor = p
		}
	}
}

// WithLinkBuilder overrides how viewer URLs are built.
func WithLinkBuilder(b LinkBuilder) Option {
	return func(a *Assembler) {
		if b != nil {
			a.links = b
		}
	}
}

// WithOpener overrides the browser launcher.
func WithOpener(o weblink.Opener) Option {
	return func(a *Assembler) {
		if o != nil {
			a.opener = o
		}
	}
}

// WithConfirmer asks before the browser is opened. Without one the link is
// opened directly.
func WithConfirmer(c prompt.Confirmer) Option {
	return func(a *Assembler) {
		a.confirmer = c
	}
}

// WithOpenBrowser toggles opening web links. When disabled the link is only
// logged and returned.
func WithOpenBrowser(open bool) Option {
	return func(a *Assembler) {
		a.openBrowser = open
	}
}

// WithPalettes replaces the theme catalog colours are resolved from.
func WithPalettes(c *palette.Catalog) Option {
	return func(a *Assembler) {
		if c != nil {
			a.palettes = c
		}
	}
}

// WithLogger routes progress output. Defaults to log.Default().
func WithLogger(l Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

func defaultLogger() Logger {
	return log.Default()
}
