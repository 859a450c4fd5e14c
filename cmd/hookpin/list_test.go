package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newMockListCmd(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "list"}
	cmd.SetOut(buf)
	return cmd
}

func TestRunListPreservesHookOrder(t *testing.T) {
	path := writeConfig(t, `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.5.0
    hooks:
      - id: mixed-line-ending
        args: [--fix=lf]
      - id: trailing-whitespace
`)
	setConfigPath(t, path)

	var buf bytes.Buffer
	if err := runList(newMockListCmd(&buf), nil); err != nil {
		t.Fatalf("runList failed: %v", err)
	}

	out := buf.String()

	// The line-ending fixer is declared first so the runner normalizes
	// input before the whitespace trimmer sees it; list must show the same
	// order.
	first := strings.Index(out, "mixed-line-ending")
	second := strings.Index(out, "trailing-whitespace")
	if first == -1 || second == -1 {
		t.Fatalf("Expected both hooks in output:\n%s", out)
	}
	if first > second {
		t.Errorf("Hooks listed out of order:\n%s", out)
	}

	if !strings.Contains(out, "(args: --fix=lf)") {
		t.Errorf("Expected args shown, got:\n%s", out)
	}
}

func TestRunListShowsRevAndExclude(t *testing.T) {
	path := writeConfig(t, `exclude: '^vendor/'
repos:
  - repo: https://github.com/psf/black
    rev: 23.9.1
    hooks:
      - id: black
        language_version: python3.11
  - repo: local
    hooks:
      - id: make-lint
`)
	setConfigPath(t, path)

	var buf bytes.Buffer
	if err := runList(newMockListCmd(&buf), nil); err != nil {
		t.Fatalf("runList failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"exclude: ^vendor/",
		"https://github.com/psf/black @ 23.9.1",
		"[python3.11]",
		"local\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	if strings.Contains(out, "local @") {
		t.Errorf("Local repo must not show a rev:\n%s", out)
	}
}

func TestRunListMissingFile(t *testing.T) {
	setConfigPath(t, "/nonexistent/.pre-commit-config.yaml")

	var buf bytes.Buffer
	if err := runList(newMockListCmd(&buf), nil); err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}
