package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/diagram"
)

var circleCmd = &cobra.Command{
	Use:   "circle [up|down]",
	Short: "Print the circle of fifths",
	Long:  "Print the circle of fifths. `down` walks it in fourths.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := ""
		if len(args) == 1 {
			raw = args[0]
		}
		dir, err := theory.ParseDirection(raw)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, strings.Join(theory.Circle(dir), " "))
		if plain, _ := cmd.Flags().GetBool("list"); plain {
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, diagram.Circle(dir, 0, diagram.Plain))
		return nil
	},
}

func init() {
	circleCmd.Flags().Bool("list", false, "Print only the key list")
}
