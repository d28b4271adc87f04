package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-formation/pkg/formation"
)

// WriteFormation stores a YAML fixture in dir and returns its path.
func WriteFormation(t *testing.T, dir, name, yaml string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write formation fixture: %v", err)
	}
	return path
}

// MustLoadFormation parses a formation fixture, failing the test on error.
func MustLoadFormation(t *testing.T, path string) *formation.Formation {
	t.Helper()

	f, err := formation.LoadFile(path)
	if err != nil {
		t.Fatalf("load formation: %v", err)
	}
	return f
}

// Files lists the base names in dir, sorted.
func Files(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
