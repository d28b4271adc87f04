package templates

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Overlay serves files from dir when present there and from base otherwise.
// An empty dir returns base unchanged.
func Overlay(dir string, base fs.FS) fs.FS {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return base
	}
	return overlayFS{top: os.DirFS(dir), base: base}
}

type overlayFS struct {
	top  fs.FS
	base fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || o.base == nil {
		return nil, err
	}
	return o.base.Open(name)
}
