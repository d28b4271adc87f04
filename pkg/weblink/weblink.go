package weblink

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"
)

// DefaultBaseURL is the hosted diagram editor.
const DefaultBaseURL = "https://app.diagrams.net/"

// ErrEmptyDiagram is returned when the document has no root element.
var ErrEmptyDiagram = errors.New("weblink: diagram has no root element")

// LinkError reports a failure while building a link for a diagram file.
type LinkError struct {
	Path string
	Err  error
}

func (e *LinkError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("weblink: %v", e.Err)
	}
	return fmt.Sprintf("weblink: %s: %v", e.Path, e.Err)
}

func (e *LinkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Compressor turns the serialized diagram into the payload bytes.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// RawDeflate produces a bare DEFLATE stream: a zlib stream with its 2 byte
// header and 4 byte checksum trailer removed. Level zero selects
// zlib.DefaultCompression.
type RawDeflate struct {
	Level int
}

func (c RawDeflate) Compress(data []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if len(out) < 6 {
		return nil, fmt.Errorf("zlib stream too short (%d bytes)", len(out))
	}
	return out[2 : len(out)-4], nil
}

// Builder assembles editor URLs that carry the diagram inline.
type Builder struct {
	BaseURL    string
	Compressor Compressor
}

// New returns a Builder targeting DefaultBaseURL.
func New() *Builder {
	return &Builder{BaseURL: DefaultBaseURL, Compressor: RawDeflate{}}
}

// FromFile reads a written diagram and links it. The path doubles as the
// editor title.
func (b *Builder) FromFile(path string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return "", &LinkError{Path: path, Err: fmt.Errorf("read diagram: %w", err)}
	}
	link, err := b.FromDocument(doc, path)
	if err != nil {
		return "", &LinkError{Path: path, Err: err}
	}
	return link, nil
}

// FromDocument links doc under title.
func (b *Builder) FromDocument(doc *etree.Document, title string) (string, error) {
	payload, err := Payload(doc, b.compressor())
	if err != nil {
		return "", err
	}

	base := b.BaseURL
	if strings.TrimSpace(base) == "" {
		base = DefaultBaseURL
	}
	return base + "?title=" + escapeTitle(title) + "#R" + payload, nil
}

func (b *Builder) compressor() Compressor {
	if b == nil || b.Compressor == nil {
		return RawDeflate{}
	}
	return b.Compressor
}

// Payload serializes the document root without the XML declaration,
// strips line breaks, compresses, base64 encodes and percent-encodes the
// result.
func Payload(doc *etree.Document, compressor Compressor) (string, error) {
	xml, err := serializeRoot(doc)
	if err != nil {
		return "", err
	}
	if compressor == nil {
		compressor = RawDeflate{}
	}

	compressed, err := compressor.Compress([]byte(xml))
	if err != nil {
		return "", fmt.Errorf("compress diagram: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(compressed)
	return url.QueryEscape(encoded), nil
}

func serializeRoot(doc *etree.Document) (string, error) {
	if doc == nil || doc.Root() == nil {
		return "", ErrEmptyDiagram
	}

	out := etree.NewDocument()
	out.SetRoot(doc.Root().Copy())
	xml, err := out.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize diagram: %w", err)
	}

	xml = strings.NewReplacer("\n", "", "\r", "").Replace(xml)
	return strings.TrimSpace(xml), nil
}

// escapeTitle percent-encodes everything but unreserved characters and the
// path separator. Spaces become %20, not +.
func escapeTitle(title string) string {
	parts := strings.Split(title, "/")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(url.QueryEscape(part), "+", "%20")
	}
	return strings.Join(parts, "/")
}
