package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/app"
	"github.com/abhisek/fretwise/internal/audio"
)

// runApp loads settings, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, logger, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("fretwise starting", "config", cfg.Path, "version", version)

	// Bubble Tea renders to stdout; the bell goes to stderr so it never
	// lands in the middle of a frame.
	return app.Run(app.Options{
		Config: cfg,
		Sink:   audio.NewBellSink(os.Stderr),
		Logger: logger.Logger,
	})
}
