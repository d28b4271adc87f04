package assembler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

const xmlDeclaration = `version="1.0" encoding="UTF-8"`

// UniquePath returns <dir>/<base>.<ext>, or the first of <base>_1.<ext>,
// <base>_2.<ext>, ... that does not exist yet.
func UniquePath(dir, base, ext string) (string, error) {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if base == "" || ext == "" {
		return "", fmt.Errorf("assembler: output name and extension are required")
	}

	candidate := filepath.Join(dir, base+"."+ext)
	for n := 1; ; n++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("assembler: check %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.%s", base, n, ext))
	}
}

// writeDiagram writes the diagram root under a fresh XML declaration,
// indented by two spaces.
func writeDiagram(doc *etree.Document, path string) error {
	root := doc.Root()
	if root == nil {
		return errors.New("assembler: diagram has no root element")
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", xmlDeclaration)
	out.SetRoot(root.Copy())
	out.Indent(2)

	if err := out.WriteToFile(path); err != nil {
		return fmt.Errorf("assembler: write diagram: %w", err)
	}
	return nil
}
