package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zriddle/hookpin/internal/config"
)

var removeCmd = &cobra.Command{
	Use:   "remove <hook-id>",
	Short: "Remove a hook from the config",
	Long: `Remove a hook activation. A repository entry whose last hook is removed is
dropped entirely. When the same hook id appears under multiple repositories,
--repo selects which one to touch.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().String("repo", "", "repository URL to remove the hook from")
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	repoFilter, err := cmd.Flags().GetString("repo")
	if err != nil {
		return fmt.Errorf("failed to get repo flag: %w", err)
	}

	path := configPath()

	doc, err := config.Load(path)
	if err != nil {
		return err
	}

	var matches []int
	for i := range doc.Repos {
		if repoFilter != "" && doc.Repos[i].Repo != repoFilter {
			continue
		}
		if doc.Repos[i].FindHook(id) != nil {
			matches = append(matches, i)
		}
	}

	switch {
	case len(matches) == 0:
		return fmt.Errorf("hook %q not found in %s", id, path)
	case len(matches) > 1:
		return fmt.Errorf("hook %q appears in %d repositories; disambiguate with --repo", id, len(matches))
	}

	idx := matches[0]
	repo := &doc.Repos[idx]
	source := repo.Repo

	hooks := repo.Hooks[:0]
	removed := false
	for _, hook := range repo.Hooks {
		if !removed && hook.ID == id {
			removed = true
			continue
		}
		hooks = append(hooks, hook)
	}
	repo.Hooks = hooks

	dropped := false
	if len(repo.Hooks) == 0 {
		doc.Repos = append(doc.Repos[:idx], doc.Repos[idx+1:]...)
		dropped = true
	}

	if err := config.Save(path, doc); err != nil {
		return err
	}

	cmd.Printf("✓ Removed %s from %s\n", id, source)
	if dropped {
		cmd.Printf("  (dropped now-empty repository entry %s)\n", source)
	}

	return nil
}
