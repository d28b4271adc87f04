package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"

	jpegQuality = 95
)

var (
	// ErrUnsupportedFormat is returned for files the processor cannot decode.
	ErrUnsupportedFormat = errors.New("imaging: unsupported image format")
	// ErrInvalidScale is returned for scale factors that are not positive.
	ErrInvalidScale = errors.New("imaging: scale factor must be positive")
)

var rasterExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// Options controls post-processing of an exported image. ScaleFactor 1.0
// keeps the size; zero or negative factors are rejected by Process.
type Options struct {
	ScaleFactor float64
	Orientation string
}

// IsNoop reports whether the options leave the image unchanged.
func (o Options) IsNoop() bool {
	return !o.landscape() && o.ScaleFactor == 1.0
}

func (o Options) landscape() bool {
	return strings.EqualFold(strings.TrimSpace(o.Orientation), OrientationLandscape)
}

// Size is the pixel size of a processed image.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// PostProcessor adjusts an exported image in place.
type PostProcessor interface {
	Process(path string, opts Options) (Size, error)
}

// Supports reports whether path has an extension the Processor can decode.
func Supports(path string) bool {
	return rasterExtensions[strings.ToLower(filepath.Ext(path))]
}

// Processor rotates and scales raster images and writes them back in
// their original format.
type Processor struct{}

// New returns a Processor.
func New() *Processor {
	return &Processor{}
}

// Process rotates landscape images a quarter turn clockwise, then scales by
// the scale factor, and overwrites path.
func (p *Processor) Process(path string, opts Options) (Size, error) {
	img, format, err := decodeFile(path)
	if err != nil {
		return Size{}, &ProcessingError{Path: path, Op: "decode", Err: err}
	}

	if opts.landscape() {
		img = Rotate270(img)
	}

	if scale := opts.ScaleFactor; scale != 1.0 {
		img, err = Resize(img, scale)
		if err != nil {
			return Size{}, &ProcessingError{Path: path, Op: "resize", Err: err}
		}
	}

	if err := encodeFile(path, img, format); err != nil {
		return Size{}, &ProcessingError{Path: path, Op: "encode", Err: err}
	}

	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}, nil
}

// Rotate270 turns img 270 degrees counter-clockwise, a clockwise quarter turn.
// The canvas grows to fit, so width and height swap.
func Rotate270(img image.Image) image.Image {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(h-1-y, x, img.At(src.Min.X+x, src.Min.Y+y))
		}
	}
	return dst
}

// Resize scales img by factor using Catmull-Rom resampling. Dimensions are
// truncated to whole pixels.
func Resize(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidScale, factor)
	}
	src := img.Bounds()
	w := int(float64(src.Dx()) * factor)
	h := int(float64(src.Dy()) * factor)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("scale factor %v collapses %dx%d image", factor, src.Dx(), src.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst, nil
}

func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
		}
		return nil, "", err
	}
	return img, format, nil
}

// encodeFile writes to a sibling temp file first so a failed encode leaves
// the original untouched.
func encodeFile(path string, img image.Image, format string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".formation-*"+filepath.Ext(path))
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := encode(tmp, img, format); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ProcessingError reports a failed post-processing step.
type ProcessingError struct {
	Path string
	Op   string
	Err  error
}

func (e *ProcessingError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("imaging: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
