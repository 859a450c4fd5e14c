package config

import (
	"strings"
	"testing"
)

const sampleDocument = `
exclude: '^docs/'
repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.5.0
    hooks:
      - id: trailing-whitespace
      - id: mixed-line-ending
        args: [--fix=lf]
      - id: check-yaml
        args: []
  - repo: https://github.com/psf/black
    rev: 23.9.1
    hooks:
      - id: black
        language_version: python3.11
        additional_dependencies: ["click<8.1"]
        name: black formatter
fail_fast: true
`

func TestDecodeSampleDocument(t *testing.T) {
	t.Parallel()

	doc, err := LoadFromReader(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if doc.Exclude == nil || *doc.Exclude != "^docs/" {
		t.Errorf("Expected exclude=^docs/, got %v", doc.Exclude)
	}

	if len(doc.Repos) != 2 {
		t.Fatalf("Expected 2 repos, got %d", len(doc.Repos))
	}

	first := doc.Repos[0]
	if first.Repo != "https://github.com/pre-commit/pre-commit-hooks" {
		t.Errorf("Unexpected first repo: %s", first.Repo)
	}
	if first.Rev != "v4.5.0" {
		t.Errorf("Expected rev=v4.5.0, got %s", first.Rev)
	}

	wantHooks := []string{"trailing-whitespace", "mixed-line-ending", "check-yaml"}
	if len(first.Hooks) != len(wantHooks) {
		t.Fatalf("Expected %d hooks, got %d", len(wantHooks), len(first.Hooks))
	}
	for i, id := range wantHooks {
		if first.Hooks[i].ID != id {
			t.Errorf("Expected hooks[%d].id=%s, got %s", i, id, first.Hooks[i].ID)
		}
	}
}

func TestDecodeArgsPresence(t *testing.T) {
	t.Parallel()

	doc, err := LoadFromReader(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	hooks := doc.Repos[0].Hooks

	// No args key at all.
	if hooks[0].Args != nil {
		t.Errorf("Expected absent args for %s, got %v", hooks[0].ID, *hooks[0].Args)
	}
	if hooks[0].ArgsOption().IsPresent() {
		t.Error("Expected ArgsOption to be None for hook without args")
	}

	// Populated args.
	if hooks[1].Args == nil {
		t.Fatal("Expected args for mixed-line-ending")
	}
	if got := *hooks[1].Args; len(got) != 1 || got[0] != "--fix=lf" {
		t.Errorf("Expected args=[--fix=lf], got %v", got)
	}

	// Present but empty is not the same as absent.
	if hooks[2].Args == nil {
		t.Fatal("Expected present-but-empty args for check-yaml")
	}
	if len(*hooks[2].Args) != 0 {
		t.Errorf("Expected empty args, got %v", *hooks[2].Args)
	}
}

func TestDecodeOptionalHookFields(t *testing.T) {
	t.Parallel()

	doc, err := LoadFromReader(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	black := doc.Repos[1].Hooks[0]

	version, ok := black.LanguageVersionOption().Get()
	if !ok || version != "python3.11" {
		t.Errorf("Expected language_version=python3.11, got %q (present=%v)", version, ok)
	}

	deps, ok := black.DependenciesOption().Get()
	if !ok || len(deps) != 1 || deps[0] != "click<8.1" {
		t.Errorf("Expected additional_dependencies=[click<8.1], got %v (present=%v)", deps, ok)
	}
}

func TestDecodeUnknownKeysPassThrough(t *testing.T) {
	t.Parallel()

	doc, err := LoadFromReader(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	// Root-level unmodeled key.
	if len(doc.Extra) != 1 || doc.Extra[0].Key != "fail_fast" {
		t.Fatalf("Expected root extra key fail_fast, got %+v", doc.Extra)
	}

	var failFast bool
	if err := doc.Extra[0].Value.Decode(&failFast); err != nil {
		t.Fatalf("Failed to decode fail_fast value: %v", err)
	}
	if !failFast {
		t.Error("Expected fail_fast=true")
	}

	// Hook-level unmodeled key.
	black := doc.Repos[1].Hooks[0]
	if len(black.Extra) != 1 || black.Extra[0].Key != "name" {
		t.Fatalf("Expected hook extra key name, got %+v", black.Extra)
	}

	var name string
	if err := black.Extra[0].Value.Decode(&name); err != nil {
		t.Fatalf("Failed to decode name value: %v", err)
	}
	if name != "black formatter" {
		t.Errorf("Expected name=black formatter, got %q", name)
	}
}

func TestDecodeRejectsNonMappingShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"sequence document", "- a\n- b\n", "document must be a mapping"},
		{"scalar repo entry", "repos:\n  - just-a-string\n", "repo entry must be a mapping"},
		{"scalar hook entry", "repos:\n  - repo: local\n    hooks:\n      - black\n", "hook must be a mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadFromReader(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestFindRepoAndHook(t *testing.T) {
	t.Parallel()

	doc, err := LoadFromReader(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	repo := doc.FindRepo("https://github.com/psf/black")
	if repo == nil {
		t.Fatal("Expected to find black repo")
	}

	if hook := repo.FindHook("black"); hook == nil {
		t.Error("Expected to find black hook")
	}
	if hook := repo.FindHook("isort"); hook != nil {
		t.Error("Did not expect to find isort hook")
	}
	if doc.FindRepo("https://example.com/nope") != nil {
		t.Error("Did not expect to find unknown repo")
	}
}

func TestIsPinned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		repo string
		want bool
	}{
		{"https://github.com/psf/black", true},
		{RepoLocal, false},
		{RepoMeta, false},
	}

	for _, tt := range tests {
		r := Repo{Repo: tt.repo}
		if got := r.IsPinned(); got != tt.want {
			t.Errorf("IsPinned(%q) = %v, want %v", tt.repo, got, tt.want)
		}
	}
}
