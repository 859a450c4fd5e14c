// Package catalog knows where well-known pre-commit hooks live, so hook ids
// can be resolved to their home repository and a reasonable pinned revision
// without the user spelling out the URL.
package catalog

import (
	"sort"

	"github.com/samber/lo"

	"github.com/zriddle/hookpin/internal/config"
)

// Entry describes one hook published by a well-known repository.
type Entry struct {
	ID          string
	Repo        string
	Rev         string
	Description string
}

// Canonical repository URLs for the hooks shipped in the default document.
const (
	PreCommitHooksRepo = "https://github.com/pre-commit/pre-commit-hooks"
	IsortRepo          = "https://github.com/pycqa/isort"
	BlackRepo          = "https://github.com/psf/black"
	AutoflakeRepo      = "https://github.com/PyCQA/autoflake"
)

// Suggested revisions for the catalog repositories.
const (
	preCommitHooksRev = "v4.5.0"
	isortRev          = "5.12.0"
	blackRev          = "23.9.1"
	autoflakeRev      = "v2.2.1"
)

var entries = []Entry{
	{"check-added-large-files", PreCommitHooksRepo, preCommitHooksRev, "reject files above a size threshold"},
	{"check-merge-conflict", PreCommitHooksRepo, preCommitHooksRev, "reject files with merge conflict markers"},
	{"check-case-conflict", PreCommitHooksRepo, preCommitHooksRev, "reject names that collide on case-insensitive filesystems"},
	{"check-ast", PreCommitHooksRepo, preCommitHooksRev, "check files parse as valid python"},
	{"check-json", PreCommitHooksRepo, preCommitHooksRev, "check files parse as valid json"},
	{"check-yaml", PreCommitHooksRepo, preCommitHooksRev, "check files parse as valid yaml"},
	{"mixed-line-ending", PreCommitHooksRepo, preCommitHooksRev, "normalize line endings"},
	{"trailing-whitespace", PreCommitHooksRepo, preCommitHooksRev, "trim trailing whitespace"},
	{"end-of-file-fixer", PreCommitHooksRepo, preCommitHooksRev, "ensure files end with a single newline"},
	{"pretty-format-json", PreCommitHooksRepo, preCommitHooksRev, "pretty-print json files"},
	{"isort", IsortRepo, isortRev, "sort import statements"},
	{"black", BlackRepo, blackRev, "format python code"},
	{"autoflake", AutoflakeRepo, autoflakeRev, "remove unused imports and variables"},
}

// Lookup returns the catalog entry for a hook id.
func Lookup(id string) (Entry, bool) {
	return lo.Find(entries, func(e Entry) bool {
		return e.ID == id
	})
}

// Known reports whether a repository URL is in the catalog.
func Known(repo string) bool {
	return lo.ContainsBy(entries, func(e Entry) bool {
		return e.Repo == repo
	})
}

// HooksFor lists the hook ids the catalog knows for a repository URL.
func HooksFor(repo string) []string {
	return lo.FilterMap(entries, func(e Entry, _ int) (string, bool) {
		return e.ID, e.Repo == repo
	})
}

// IDs returns every catalog hook id, sorted.
func IDs() []string {
	ids := lo.Map(entries, func(e Entry, _ int) string {
		return e.ID
	})
	sort.Strings(ids)
	return ids
}

// Lint cross-checks a document against the catalog: a hook that claims a
// catalog repository but is not in that repository's manifest is almost
// certainly a typo. The real authority is the external runner; these
// findings are advisory and only cover repositories the catalog knows.
func Lint(doc *config.Document) []string {
	var findings []string
	for i := range doc.Repos {
		r := &doc.Repos[i]
		if !Known(r.Repo) {
			continue
		}
		published := HooksFor(r.Repo)
		for j := range r.Hooks {
			if !lo.Contains(published, r.Hooks[j].ID) {
				findings = append(findings,
					"hook "+r.Hooks[j].ID+" is not published by "+r.Repo)
			}
		}
	}
	return findings
}
