package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zriddle/hookpin/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured repositories and hooks",
	Long: `Print every repository entry and its hooks in document order, which is the
order the external runner executes them.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	doc, err := config.Load(configPath())
	if err != nil {
		return err
	}

	if pattern, ok := doc.ExcludeOption().Get(); ok {
		cmd.Printf("exclude: %s\n\n", pattern)
	}

	for i := range doc.Repos {
		repo := &doc.Repos[i]
		if repo.IsPinned() {
			cmd.Printf("%s @ %s\n", repo.Repo, repo.Rev)
		} else {
			cmd.Printf("%s\n", repo.Repo)
		}

		for j := range repo.Hooks {
			hook := &repo.Hooks[j]

			line := "  - " + hook.ID
			if args, ok := hook.ArgsOption().Get(); ok {
				line += fmt.Sprintf(" (args: %s)", strings.Join(args, " "))
			}
			if version, ok := hook.LanguageVersionOption().Get(); ok {
				line += fmt.Sprintf(" [%s]", version)
			}

			cmd.Println(line)
		}
	}

	return nil
}
