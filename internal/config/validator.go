package config

import (
	"fmt"
	"regexp"
)

// Validate checks the document for structural errors: a malformed exclude
// pattern, missing source locations or revisions, and empty hook ids.
// Reference errors (a rev that does not exist upstream, a hook id absent
// from the referenced repository's manifest) are deliberately out of scope;
// only the runner can detect those at execution time.
// Returns a ValidationError listing all findings, or nil if valid.
func (d *Document) Validate() error {
	errs := &ValidationError{}

	validateExclude(d, errs)
	for i := range d.Repos {
		validateRepo(&d.Repos[i], i, errs)
	}

	return errs.ToError()
}

// validateExclude checks that the root exclude pattern, when present,
// compiles as a path-matching expression.
func validateExclude(d *Document, errs *ValidationError) {
	if d.Exclude == nil {
		return
	}
	if _, err := regexp.Compile(*d.Exclude); err != nil {
		errs.Addf("exclude is not a valid pattern: %v", err)
	}
}

// validateRepo checks a single repository entry.
func validateRepo(r *Repo, index int, errs *ValidationError) {
	prefix := func(field string) string {
		if r.Repo != "" {
			return fmt.Sprintf("repo[%s].%s", r.Repo, field)
		}
		return fmt.Sprintf("repos[%d].%s", index, field)
	}

	if r.Repo == "" {
		errs.Addf("repos[%d].repo is required", index)
	}

	// Pinned entries need a revision for reproducibility; local/meta
	// entries are defined inline and take none.
	if r.IsPinned() && r.Rev == "" {
		errs.Addf("%s is required", prefix("rev"))
	}
	if !r.IsPinned() && r.Rev != "" {
		errs.Addf("%s must not be set for %s repos", prefix("rev"), r.Repo)
	}

	if len(r.Hooks) == 0 {
		errs.Addf("%s must list at least one hook", prefix("hooks"))
	}

	for j := range r.Hooks {
		validateHook(&r.Hooks[j], r.Repo, j, errs)
	}
}

// validateHook checks a single hook activation.
func validateHook(h *Hook, repoName string, index int, errs *ValidationError) {
	prefix := func(field string) string {
		if repoName != "" {
			return fmt.Sprintf("repo[%s].hooks[%d].%s", repoName, index, field)
		}
		return fmt.Sprintf("hooks[%d].%s", index, field)
	}

	if h.ID == "" {
		errs.Addf("%s is required", prefix("id"))
	}

	if h.LanguageVersion != nil && *h.LanguageVersion == "" {
		errs.Addf("%s must not be empty when present", prefix("language_version"))
	}
}
