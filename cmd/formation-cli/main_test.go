package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formation/pkg/formation"
)

const webYAML = `
export: {export_type: web, export_name: demo}
field: {type: outdoor}
players:
  - {name: "A", team: offense, x: 10, y: 50}
disc: {x: 18, y: 50}
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCmd(NewOptions())
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "formation.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestCmd_RequiresOneFile(t *testing.T) {
	if _, _, err := run(t); err == nil || !strings.Contains(err.Error(), "formation YAML file") {
		t.Fatalf("expected missing argument error, got %v", err)
	}
	if _, _, err := run(t, "a.yaml", "b.yaml"); err == nil {
		t.Fatalf("expected error for two files")
	}
}

func TestCmd_NoOpenPrintsLink(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, webYAML)

	stdout, stderr, err := run(t, path, "--workdir", dir, "--no-open")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout, "https://app.diagrams.net/?title=") {
		t.Fatalf("link not printed: %q", stdout)
	}
	if !strings.Contains(stderr, "diagram written: ") {
		t.Fatalf("progress not logged: %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "demo", "demo.drawio")); err != nil {
		t.Fatalf("diagram not written: %v", err)
	}
}

func TestCmd_MissingExporterIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, strings.Replace(webYAML, "export_type: web", "export_type: png", 1))

	_, stderr, err := run(t, path, "--workdir", dir, "--drawio", filepath.Join(dir, "no-drawio"))
	if err != nil {
		t.Fatalf("missing exporter must not fail the command: %v", err)
	}
	if !strings.Contains(stderr, "warning: export:") {
		t.Fatalf("export failure not logged: %q", stderr)
	}
}

func TestCmd_InputErrorsFail(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, strings.Replace(webYAML, "disc: {x: 18, y: 50}", "disc: {x: 18}", 1))

	_, stderr, err := run(t, path, "--workdir", dir, "--quiet")
	var inputErr *formation.InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if stderr != "" {
		t.Fatalf("quiet run logged output: %q", stderr)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "demo")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("nothing should be written, stat: %v", statErr)
	}
}
