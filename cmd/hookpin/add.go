package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zriddle/hookpin/internal/catalog"
	"github.com/zriddle/hookpin/internal/config"
)

var addCmd = &cobra.Command{
	Use:   "add <hook-id>",
	Short: "Add a hook to the config",
	Long: `Add a hook activation. Well-known hook ids resolve to their home repository
through the built-in catalog; anything else needs --repo (and --rev, unless
the repository is local/meta or already present in the document). A new
repository entry is appended at the end of the document so existing hook
ordering is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("repo", "", "repository URL (default: resolved from the catalog)")
	addCmd.Flags().String("rev", "", "pinned revision for a new repository entry")
	addCmd.Flags().StringArray("arg", nil, "argument passed verbatim to the tool (repeatable)")
	addCmd.Flags().StringArray("dependency", nil, "additional dependency specifier (repeatable)")
	addCmd.Flags().String("language-version", "", "interpreter version for this hook only")
}

func runAdd(cmd *cobra.Command, args []string) error {
	id := args[0]

	repoURL, err := cmd.Flags().GetString("repo")
	if err != nil {
		return fmt.Errorf("failed to get repo flag: %w", err)
	}
	rev, err := cmd.Flags().GetString("rev")
	if err != nil {
		return fmt.Errorf("failed to get rev flag: %w", err)
	}

	path := configPath()

	doc, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("cannot load %s (run \"hookpin init\" first): %w", path, err)
	}

	if repoURL == "" {
		entry, ok := catalog.Lookup(id)
		if !ok {
			return fmt.Errorf("hook %q is not in the catalog; pass --repo and --rev", id)
		}
		repoURL = entry.Repo
		if rev == "" {
			rev = entry.Rev
		}
	}

	target := doc.FindRepo(repoURL)
	if target == nil {
		entry := config.Repo{Repo: repoURL}
		if entry.IsPinned() {
			if rev == "" {
				return fmt.Errorf("--rev is required for new repository %s", repoURL)
			}
			entry.Rev = rev
		}
		doc.Repos = append(doc.Repos, entry)
		target = &doc.Repos[len(doc.Repos)-1]
	} else if cmd.Flags().Changed("rev") && rev != target.Rev {
		return fmt.Errorf("--rev %s conflicts with existing entry %s @ %s; edit the rev directly",
			rev, target.Repo, target.Rev)
	}

	if target.FindHook(id) != nil {
		return fmt.Errorf("hook %q is already configured for %s", id, target.Repo)
	}

	hook, err := buildHook(cmd, id)
	if err != nil {
		return err
	}
	target.Hooks = append(target.Hooks, hook)

	if err := doc.Validate(); err != nil {
		return err
	}
	if err := config.Save(path, doc); err != nil {
		return err
	}

	if target.IsPinned() {
		cmd.Printf("✓ Added %s (%s @ %s)\n", id, target.Repo, target.Rev)
	} else {
		cmd.Printf("✓ Added %s (%s)\n", id, target.Repo)
	}

	return nil
}

// buildHook assembles the hook activation from the optional flags. Flags
// that were not passed stay absent in the document rather than becoming
// empty values.
func buildHook(cmd *cobra.Command, id string) (config.Hook, error) {
	hook := config.Hook{ID: id}

	if cmd.Flags().Changed("arg") {
		hookArgs, err := cmd.Flags().GetStringArray("arg")
		if err != nil {
			return hook, fmt.Errorf("failed to get arg flag: %w", err)
		}
		hook.Args = &hookArgs
	}

	if cmd.Flags().Changed("dependency") {
		deps, err := cmd.Flags().GetStringArray("dependency")
		if err != nil {
			return hook, fmt.Errorf("failed to get dependency flag: %w", err)
		}
		hook.AdditionalDependencies = &deps
	}

	if cmd.Flags().Changed("language-version") {
		version, err := cmd.Flags().GetString("language-version")
		if err != nil {
			return hook, fmt.Errorf("failed to get language-version flag: %w", err)
		}
		hook.LanguageVersion = &version
	}

	return hook, nil
}
