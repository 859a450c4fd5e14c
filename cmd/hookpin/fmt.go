package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zriddle/hookpin/internal/config"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the config in canonical form",
	Long: `Parse and re-serialize the document: two-space indent, schema keys in
canonical order, unmodeled keys preserved as written. --check reports
whether a rewrite would change the file without touching it.`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().Bool("check", false, "exit non-zero if the file is not canonically formatted")
}

func runFmt(cmd *cobra.Command, _ []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}

	path := configPath()

	original, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	doc, err := config.LoadFromReader(bytes.NewReader(original))
	if err != nil {
		return err
	}

	formatted, err := doc.Encode()
	if err != nil {
		return err
	}

	if check {
		if !bytes.Equal(original, formatted) {
			cmd.Printf("✗ %s is not canonically formatted\n", path)
			return errors.New("config file needs formatting")
		}
		cmd.Printf("✓ %s is canonically formatted\n", path)
		return nil
	}

	if bytes.Equal(original, formatted) {
		cmd.Printf("✓ %s unchanged\n", path)
		return nil
	}

	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	cmd.Printf("✓ Rewrote %s\n", path)

	return nil
}
