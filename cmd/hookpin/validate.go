package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zriddle/hookpin/internal/catalog"
	"github.com/zriddle/hookpin/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long: `Validate the configuration document without invoking any hook.
Checks YAML syntax, required fields, and the exclude pattern. Whether a
pinned rev exists upstream is only detectable by the runner at execution
time and is not checked here. --strict additionally cross-checks hook ids
against the catalog of well-known repositories.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "also flag hook ids unknown to the catalog")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}

	path := configPath()

	doc, err := config.Load(path)
	if err != nil {
		cmd.Printf("✗ Config validation failed: %s\n", err)
		return err
	}

	if err := doc.Validate(); err != nil {
		cmd.Printf("✗ Config validation failed: %s\n", err)
		return err
	}

	if strict {
		if findings := catalog.Lint(doc); len(findings) > 0 {
			for _, finding := range findings {
				cmd.Printf("✗ %s\n", finding)
			}
			return fmt.Errorf("strict validation failed with %d findings", len(findings))
		}
	}

	cmd.Printf("✓ %s is valid\n", path)

	return nil
}
