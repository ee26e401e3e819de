package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/diagram"
)

var fretboardCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Print the fretboard, optionally filtered to a note or scale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer logger.Close()

		fb, err := cfg.Fretboard()
		if err != nil {
			return err
		}
		if frets, _ := cmd.Flags().GetInt("frets"); frets > 0 {
			if fb, err = theory.NewFretboard(fb.Tuning, frets); err != nil {
				return err
			}
		}

		filter, err := fretboardFilter(cmd)
		if err != nil {
			return err
		}
		logger.Debug("fretboard", "tuning", fb.Tuning, "frets", fb.Frets, "filter", filter.Describe())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s · %d frets · %s\n\n", tuningName(fb.Tuning), fb.Frets, filter.Describe())
		fmt.Fprintln(out, diagram.Fretboard(fb, filter, diagram.Plain))
		return nil
	},
}

// fretboardFilter turns --note or --scale-root/--scale into a Filter.
func fretboardFilter(cmd *cobra.Command) (theory.Filter, error) {
	note, _ := cmd.Flags().GetString("note")
	root, _ := cmd.Flags().GetString("scale-root")
	scale, _ := cmd.Flags().GetString("scale")

	switch {
	case note != "" && (root != "" || scale != ""):
		return theory.Filter{}, fmt.Errorf("--note cannot be combined with --scale-root or --scale")
	case note != "":
		return theory.OnlyNote(note)
	case root != "":
		if scale == "" {
			scale = "Major"
		}
		r, err := parseRoot(root)
		if err != nil {
			return theory.Filter{}, err
		}
		f, err := theory.OnlyScale(r, scale)
		if err != nil {
			return theory.Filter{}, vocabularyError(err, theory.ScaleTypes())
		}
		return f, nil
	case scale != "":
		return theory.Filter{}, fmt.Errorf("--scale needs --scale-root")
	}
	return theory.AllNotes(), nil
}

// tuningName lists the open strings from lowest to highest, the way
// guitarists say it.
func tuningName(tuning []string) string {
	s := ""
	for i := len(tuning) - 1; i >= 0; i-- {
		s += tuning[i]
	}
	return s
}

func init() {
	fretboardCmd.Flags().String("note", "", "Show only this note")
	fretboardCmd.Flags().String("scale-root", "", "Show only the notes of a scale on this root")
	fretboardCmd.Flags().String("scale", "", "Scale type for --scale-root (default Major)")
	fretboardCmd.Flags().Int("frets", 0, "Number of frets to draw (default from config)")
}
