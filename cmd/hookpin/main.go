// Package main is the entry point for hookpin.
package main

import (
	"context"
	"os"

	"charm.land/fang/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zriddle/hookpin/internal/logging"
)

const defaultConfigFile = ".pre-commit-config.yaml"

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "hookpin",
	Short: "Manage the pre-commit hook configuration document",
	Long: `hookpin maintains a repository's .pre-commit-config.yaml: it scaffolds the
document, validates it, lists and rewrites hook activations, and keeps every
hook repository pinned to a revision. Keys the schema does not model pass
through every rewrite untouched, and repository/hook ordering is always
preserved, since the external runner executes entries in document order.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger := logging.New(logLevel, os.Stderr)
		log.Logger = logger
		zerolog.DefaultContextLogger = &logger
	},
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default: ./"+defaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.LevelInfo,
		"log level (debug, info, warn, error)")
}

// configPath returns the document path from --config or the default.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return defaultConfigFile
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
