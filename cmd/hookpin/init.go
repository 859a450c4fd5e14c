package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default config file",
	Long: `Generate a default ` + defaultConfigFile + ` covering the usual checks:
large files, merge and case conflicts, line endings, JSON/YAML/AST syntax,
trailing whitespace, JSON formatting, import sorting, code formatting, and
unused-import removal.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("output", "o", "", "output path (default: ./"+defaultConfigFile+")")
	initCmd.Flags().Bool("force", false, "overwrite existing config file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	if output == "" {
		output = configPath()
	}

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", output)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(output, []byte(defaultDocumentTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cmd.Printf("✓ Config file created at %s\n", output)
	cmd.Println("\nNext steps:")
	cmd.Println("  1. Review the pinned revisions and adjust to taste")
	cmd.Println("  2. Validate with: hookpin validate")
	cmd.Println("  3. Install the runner: pre-commit install")

	return nil
}

// defaultDocumentTemplate is the scaffold written by "hookpin init". Every
// hook id below resolves through the built-in catalog, so the scaffold
// passes strict validation out of the box.
const defaultDocumentTemplate = `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.5.0
    hooks:
      - id: check-added-large-files
      - id: check-merge-conflict
      - id: check-case-conflict
      - id: check-ast
      - id: check-json
      - id: check-yaml
      - id: mixed-line-ending
        args: [--fix=lf]
      - id: trailing-whitespace
      - id: end-of-file-fixer
      - id: pretty-format-json
        args: [--autofix]
  - repo: https://github.com/pycqa/isort
    rev: 5.12.0
    hooks:
      - id: isort
  - repo: https://github.com/psf/black
    rev: 23.9.1
    hooks:
      - id: black
  - repo: https://github.com/PyCQA/autoflake
    rev: v2.2.1
    hooks:
      - id: autoflake
        args: [--in-place, --remove-all-unused-imports]
`
