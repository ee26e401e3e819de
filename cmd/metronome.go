package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/midiexport"
)

var metronomeCmd = &cobra.Command{
	Use:   "metronome",
	Short: "Click a tempo on the terminal bell, or export a click track",
	Long: "Click a tempo on the terminal bell until interrupted, or for --count beats.\n" +
		"With --midi, write --bars bars of click track to a MIDI file instead.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer logger.Close()

		bpm := cfg.Metronome.BPM
		if cmd.Flags().Changed("bpm") {
			bpm, _ = cmd.Flags().GetInt("bpm")
		}
		beatsPerBar := cfg.Metronome.BeatsPerBar
		if cmd.Flags().Changed("beats") {
			beatsPerBar, _ = cmd.Flags().GetInt("beats")
		}
		met, err := audio.NewMetronome(bpm, beatsPerBar)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("midi"); path != "" {
			bars, _ := cmd.Flags().GetInt("bars")
			opts := midiexport.DefaultOptions()
			opts.BPM = float64(bpm)
			if err := writeFile(path, func(w io.Writer) error {
				return midiexport.WriteClick(w, bars, beatsPerBar, opts)
			}); err != nil {
				return err
			}
			fmt.Fprintf(out, "wrote %d bars at %d BPM to %s\n", bars, bpm, path)
			return nil
		}

		count, _ := cmd.Flags().GetInt("count")
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		fmt.Fprintf(out, "%d BPM, %d beats per bar (Ctrl+C to stop)\n", bpm, beatsPerBar)
		err = met.Run(ctx, audio.NewBellSink(out), count, logger.Logger)
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(out, "\nstopped after %d beats\n", met.Beats())
			return nil
		}
		return err
	},
}

func init() {
	metronomeCmd.Flags().Int("bpm", audio.DefaultBPM, "Tempo in beats per minute (default from config)")
	metronomeCmd.Flags().Int("beats", audio.DefaultBeatsPerBar, "Beats per bar; 0 disables the accent (default from config)")
	metronomeCmd.Flags().Int("count", 0, "Stop after this many beats (0 runs until interrupted)")
	metronomeCmd.Flags().String("midi", "", "Write a click track to this MIDI file instead of clicking")
	metronomeCmd.Flags().Int("bars", 4, "Bars of click track for --midi")
}
