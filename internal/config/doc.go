// Package config models the pre-commit configuration document: an ordered
// list of pinned hook repositories consumed by the external pre-commit
// runner.
//
// The package preserves everything it does not model. Unknown keys are
// carried through load and save untouched, and sequence order is kept
// exactly as written, since the runner executes hooks in document order and
// later hooks may rely on earlier ones having normalized the tree.
package config

import (
	"github.com/samber/mo"
	"gopkg.in/yaml.v3"
)

// Repository sentinels. Hooks under these entries are defined inline by the
// runner rather than fetched from a pinned revision.
const (
	RepoLocal = "local"
	RepoMeta  = "meta"
)

// Field is a document entry this schema does not model. The value node is
// kept so the key survives a load/save round-trip; aliases are resolved at
// decode time since the anchors they reference may not survive
// re-serialization.
type Field struct {
	Key   string
	Value *yaml.Node
}

// Document is the root of a pre-commit configuration file.
type Document struct {
	// Exclude is a path pattern removing matching files from consideration
	// by all hooks. Nil when the key is absent.
	Exclude *string

	// Repos is the ordered list of pinned hook repositories. Order is
	// significant: the runner executes entries top to bottom.
	Repos []Repo

	// Extra holds root-level keys the schema does not model (fail_fast,
	// default_stages, ci, ...), in document order.
	Extra []Field
}

// Repo pins one external source of hooks.
type Repo struct {
	// Repo is the source location, usually a version-control URL, or one of
	// the local/meta sentinels.
	Repo string

	// Rev is the revision (tag or commit) to fetch, pinned for
	// reproducibility. Empty for local and meta repos. Whether the revision
	// actually exists is the runner's concern, not this document's.
	Rev string

	// Hooks is the ordered list of hook activations for this repository.
	Hooks []Hook

	Extra []Field

	// revEmpty records that the document carried an explicitly empty rev,
	// so the key keeps its presence across a round-trip even though the
	// validator rejects the value.
	revEmpty bool
}

// Hook activates a single hook from its repository's own manifest.
type Hook struct {
	// ID names the hook within the referenced repository's manifest. It is
	// not required to be unique within this document.
	ID string

	// Args are passed verbatim to the underlying tool. A nil pointer means
	// the key is absent, which is distinct from a present-but-empty list.
	Args *[]string

	// AdditionalDependencies lists extra dependency specifiers installed
	// into the hook's environment.
	AdditionalDependencies *[]string

	// LanguageVersion pins an interpreter or runtime version for this hook
	// only.
	LanguageVersion *string

	Extra []Field
}

// ExcludeOption returns the root exclude pattern as an Option.
// Returns None when the key is absent.
func (d *Document) ExcludeOption() mo.Option[string] {
	if d.Exclude == nil {
		return mo.None[string]()
	}
	return mo.Some(*d.Exclude)
}

// FindRepo returns the first repo entry matching the given source location,
// or nil if the document has none.
func (d *Document) FindRepo(source string) *Repo {
	for i := range d.Repos {
		if d.Repos[i].Repo == source {
			return &d.Repos[i]
		}
	}
	return nil
}

// IsPinned reports whether this entry requires a revision. Local and meta
// repos are defined inline and take no rev.
func (r *Repo) IsPinned() bool {
	return r.Repo != RepoLocal && r.Repo != RepoMeta
}

// FindHook returns the first hook with the given id, or nil.
func (r *Repo) FindHook(id string) *Hook {
	for i := range r.Hooks {
		if r.Hooks[i].ID == id {
			return &r.Hooks[i]
		}
	}
	return nil
}

// ArgsOption returns the hook arguments as an Option.
// Returns None when the args key is absent; a present-but-empty list is
// Some([]).
func (h *Hook) ArgsOption() mo.Option[[]string] {
	if h.Args == nil {
		return mo.None[[]string]()
	}
	return mo.Some(*h.Args)
}

// DependenciesOption returns additional_dependencies as an Option.
func (h *Hook) DependenciesOption() mo.Option[[]string] {
	if h.AdditionalDependencies == nil {
		return mo.None[[]string]()
	}
	return mo.Some(*h.AdditionalDependencies)
}

// LanguageVersionOption returns language_version as an Option.
func (h *Hook) LanguageVersionOption() mo.Option[string] {
	if h.LanguageVersion == nil {
		return mo.None[string]()
	}
	return mo.Some(*h.LanguageVersion)
}
