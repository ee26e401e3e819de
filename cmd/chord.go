package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/midiexport"
	"github.com/abhisek/fretwise/internal/theory"
)

var chordCmd = &cobra.Command{
	Use:   "chord <root> <type>",
	Short: "Spell a chord",
	Long:  "Spell a chord from its root and type, e.g. `fretwise chord Bb m7`.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseRoot(args[0])
		if err != nil {
			return err
		}
		chordType := args[1]
		notes, err := theory.BuildChord(root, chordType)
		if err != nil {
			return vocabularyError(err, theory.ChordTypes())
		}

		display, _ := cmd.Flags().GetBool("display")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s: %s\n", root, chordType, formatNotes(notes, display))
		fmt.Fprintf(out, "formula: %s\n", formatFormula(theory.MustChordFormula(chordType)))

		return exportMIDI(cmd, func(w io.Writer, opts midiexport.Options) error {
			return midiexport.WriteChord(w, root+chordType, notes, opts)
		})
	},
}

var chordListCmd = &cobra.Command{
	Use:   "list",
	Short: "List chord types and their formulas",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %-12s  %s\n", "Type", "Formula", "On C")
		fmt.Fprintln(out, strings.Repeat("─", 36))
		for _, name := range theory.ChordTypes() {
			notes, _ := theory.BuildChord("C", name)
			fmt.Fprintf(out, "%-8s  %-12s  %s\n", name, formatFormula(theory.MustChordFormula(name)), strings.Join(notes, " "))
		}
		fmt.Fprintf(out, "\n%d chord types\n", len(theory.ChordTypes()))
	},
}

// exportMIDI writes a file when --midi is set.
func exportMIDI(cmd *cobra.Command, write func(io.Writer, midiexport.Options) error) error {
	path, _ := cmd.Flags().GetString("midi")
	if path == "" {
		return nil
	}
	opts := midiexport.DefaultOptions()
	if octave, _ := cmd.Flags().GetInt("octave"); octave > 0 {
		opts.Octave = octave
	}
	if bpm, _ := cmd.Flags().GetInt("bpm"); bpm > 0 {
		opts.BPM = float64(bpm)
	}
	if err := writeFile(path, func(w io.Writer) error { return write(w, opts) }); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// addMIDIFlags registers the export flags shared by chord and scale.
func addMIDIFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("display", false, "Show enharmonic pairs (C#/Db) instead of sharps")
	cmd.Flags().String("midi", "", "Also write a Standard MIDI File to this path")
	cmd.Flags().Int("octave", 4, "Starting octave of the MIDI voicing")
	cmd.Flags().Int("bpm", 80, "Tempo of the MIDI file")
}

func init() {
	addMIDIFlags(chordCmd)
	chordCmd.AddCommand(chordListCmd)
}
