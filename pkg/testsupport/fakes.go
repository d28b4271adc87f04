package testsupport

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"

	"github.com/goliatone/go-formation/pkg/export"
	"github.com/goliatone/go-formation/pkg/imaging"
)

// Rasterizer records export jobs. With WritePNG set it writes a small PNG to
// the job output so a real post-processor can run against it. The PNG is
// written before Err is returned.
type Rasterizer struct {
	Err      error
	WritePNG bool

	mu   sync.Mutex
	Jobs []export.Job
}

func (r *Rasterizer) Rasterize(_ context.Context, job export.Job) error {
	r.mu.Lock()
	r.Jobs = append(r.Jobs, job)
	r.mu.Unlock()

	if !r.WritePNG {
		return r.Err
	}
	if err := writePNG(job.Output); err != nil {
		return err
	}
	return r.Err
}

func writePNG(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: 52, G: 152, B: 219, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// ProcessCall is one recorded post-processing request.
type ProcessCall struct {
	Path    string
	Options imaging.Options
}

// PostProcessor records calls and returns Size or Err.
type PostProcessor struct {
	Size imaging.Size
	Err  error

	mu    sync.Mutex
	Calls []ProcessCall
}

func (p *PostProcessor) Process(path string, opts imaging.Options) (imaging.Size, error) {
	p.mu.Lock()
	p.Calls = append(p.Calls, ProcessCall{Path: path, Options: opts})
	p.mu.Unlock()

	if p.Err != nil {
		return imaging.Size{}, p.Err
	}
	return p.Size, nil
}

// Opener records links instead of launching a browser.
type Opener struct {
	Err error

	mu    sync.Mutex
	Links []string
}

func (o *Opener) Open(link string) error {
	o.mu.Lock()
	o.Links = append(o.Links, link)
	o.mu.Unlock()
	return o.Err
}

// Logger keeps formatted lines.
type Logger struct {
	mu    sync.Mutex
	Lines []string
}

func (l *Logger) Printf(format string, args ...any) {
	l.mu.Lock()
	l.Lines = append(l.Lines, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}
