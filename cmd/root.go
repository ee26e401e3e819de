package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/config"
	"github.com/abhisek/fretwise/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Music theory in the terminal",
	Long: "fretwise: fretboard and keyboard explorer, chord and scale builder, circle of fifths,\n" +
		"metronome, practice randomizer and a ten-question theory quiz.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides FRETWISE_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON log records to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (CLI commands log to stderr when set)")

	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(circleCmd)
	rootCmd.AddCommand(fretboardCmd)
	rootCmd.AddCommand(keysigCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(metronomeCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the file named by --config, falling back to the
// FRETWISE_CONFIG env var and then the default XDG path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command. The TUI never writes records
// to the terminal; CLI commands do when --log-level is given.
func newLogger(cmd *cobra.Command, cfg *config.Config, tui bool) (*logging.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	file, _ := cmd.Flags().GetString("log-file")
	lc := cfg.Logging(level, file)
	lc.Stderr = !tui && level != ""
	logger, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger, nil
}

// setup loads the config and logger every command needs.
func setup(cmd *cobra.Command, tui bool) (*config.Config, *logging.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cmd, cfg, tui)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
