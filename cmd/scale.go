package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/midiexport"
	"github.com/abhisek/fretwise/internal/theory"
)

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <type>",
	Short: "Spell a scale",
	Long:  "Spell a scale from its root and type. Quote multi-word types: `fretwise scale A \"Natural Minor\"`.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parseRoot(args[0])
		if err != nil {
			return err
		}
		// Unquoted multi-word names arrive as separate args.
		scaleType := strings.Join(args[1:], " ")
		notes, err := theory.BuildScale(root, scaleType)
		if err != nil {
			return vocabularyError(err, theory.ScaleTypes())
		}

		display, _ := cmd.Flags().GetBool("display")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s: %s\n", root, scaleType, formatNotes(notes, display))
		fmt.Fprintf(out, "formula: %s\n", formatFormula(theory.MustScaleFormula(scaleType)))

		return exportMIDI(cmd, func(w io.Writer, opts midiexport.Options) error {
			return midiexport.WriteScale(w, root+" "+scaleType, notes, opts)
		})
	},
}

var scaleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scale types and their formulas",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s  %-16s  %s\n", "Type", "Formula", "On C")
		fmt.Fprintln(out, strings.Repeat("─", 56))
		for _, name := range theory.ScaleTypes() {
			notes, _ := theory.BuildScale("C", name)
			fmt.Fprintf(out, "%-18s  %-16s  %s\n", name, formatFormula(theory.MustScaleFormula(name)), strings.Join(notes, " "))
		}
		fmt.Fprintf(out, "\n%d scale types\n", len(theory.ScaleTypes()))
	},
}

func init() {
	addMIDIFlags(scaleCmd)
	scaleCmd.AddCommand(scaleListCmd)
}
