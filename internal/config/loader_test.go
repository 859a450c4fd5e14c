package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".pre-commit-config.yaml")

	content := `repos:
  - repo: https://github.com/psf/black
    rev: 23.9.1
    hooks:
      - id: black
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(doc.Repos) != 1 || doc.Repos[0].Rev != "23.9.1" {
		t.Errorf("Unexpected document: %+v", doc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/.pre-commit-config.yaml")
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}

	if !strings.Contains(err.Error(), "failed to open config file") {
		t.Errorf("Expected open error message, got: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	content := `
repos:
  - repo: "https://github.com/psf/black
    # Missing closing quote above
`

	_, err := LoadFromReader(strings.NewReader(content))
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}

	if !strings.Contains(err.Error(), "failed to parse config YAML") {
		t.Errorf("Expected parse error message, got: %v", err)
	}
}

func TestLoadKeepsArgsVerbatim(t *testing.T) {
	// ${...} sequences are tool arguments, not references for this parser
	// to expand. Not parallel: t.Setenv forbids it.
	t.Setenv("HOOKPIN_TEST_VALUE", "expanded")

	content := `repos:
  - repo: local
    hooks:
      - id: echo
        args: ["${HOOKPIN_TEST_VALUE}"]
`

	doc, err := LoadFromReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	args := *doc.Repos[0].Hooks[0].Args
	if args[0] != "${HOOKPIN_TEST_VALUE}" {
		t.Errorf("Expected literal ${HOOKPIN_TEST_VALUE}, got %q", args[0])
	}
}
