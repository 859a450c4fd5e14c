package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zriddle/hookpin/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate the config on every save",
	Long: `Watch the document and re-validate after each change. Useful in a spare
terminal while editing the config. Stops on interrupt.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	path := configPath()

	doc, err := config.Load(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to load config")
		return err
	}
	logValidation(path, doc)

	runtime := config.NewRuntime(doc)

	watcher, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close watcher")
		}
	}()

	watcher.OnReload(func(next *config.Document) error {
		runtime.Store(next)
		logValidation(path, next)
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("path", watcher.Path()).Msg("watching config document")

	err = watcher.Watch(ctx)

	last := runtime.Get()
	log.Info().Int("repos", len(last.Repos)).Msg("stopped watching")

	return err
}

// logValidation validates the document and logs the outcome with repo and
// hook counts.
func logValidation(path string, doc *config.Document) {
	if err := doc.Validate(); err != nil {
		log.Error().Err(err).Str("path", path).Msg("document invalid")
		return
	}

	hookCount := 0
	for i := range doc.Repos {
		hookCount += len(doc.Repos[i].Hooks)
	}

	log.Info().
		Str("path", path).
		Int("repos", len(doc.Repos)).
		Int("hooks", hookCount).
		Msg("document valid")
}
