package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/practice"
)

var practiceCmd = &cobra.Command{
	Use:       "practice [chords|strum]",
	Short:     "Deal a random chord set and strum pattern",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"chords", "strum"},
	RunE: func(cmd *cobra.Command, args []string) error {
		what := ""
		if len(args) == 1 {
			what = args[0]
		}
		rng := seededRand(cmd)
		rest, _ := cmd.Flags().GetFloat64("rest")
		if rest < 0 || rest > 1 {
			return fmt.Errorf("--rest must be between 0 and 1, got %g", rest)
		}

		out := cmd.OutOrStdout()
		if what == "" || what == "chords" {
			set := practice.ChordSet(rng)
			fmt.Fprintln(out, "Chords:")
			for i := 0; i < len(set); i += 7 {
				end := min(i+7, len(set))
				fmt.Fprintln(out, "  "+practice.FormatChordSet(set[i:end]))
			}
		}
		if what == "" || what == "strum" {
			counts, strokes := practice.Strum(rng, rest).Lines()
			if what == "" {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "Strum:")
			fmt.Fprintln(out, "  "+counts)
			fmt.Fprintln(out, "  "+strings.TrimRight(strokes, " "))
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().Uint64("seed", 0, "Random seed for a repeatable deal")
	practiceCmd.Flags().Float64("rest", practice.DefaultRestProbability, "Probability that a strum slot rests")
}
