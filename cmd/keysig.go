package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/theory"
)

var keysigCmd = &cobra.Command{
	Use:   "keysig [KEY]",
	Short: "Show major key signatures",
	Long:  "Show the accidentals of a major key, or the whole table when no key is given. With --find, name the key for a list of accidentals.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cmd.Flags().Changed("find") {
			if len(args) > 0 {
				return fmt.Errorf("--find takes no key argument")
			}
			raw, _ := cmd.Flags().GetString("find")
			key, err := findKey(raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s major (relative minor: %s minor)\n", key, relativeMinor(key))
			return nil
		}
		if len(args) == 0 {
			fmt.Fprintf(out, "%-4s  %-3s  %-22s  %s\n", "Key", "#/b", "Accidentals", "Relative minor")
			fmt.Fprintln(out, strings.Repeat("─", 48))
			for _, key := range theory.Keys() {
				ks := theory.MustKeySignature(key)
				fmt.Fprintf(out, "%-4s  %-3d  %-22s  %s\n", key, len(ks.Accidentals), accidentalText(ks), relativeMinor(key))
			}
			return nil
		}

		ks, err := lookupKeySignature(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s major: %s\n", ks.Key, accidentalText(ks))
		fmt.Fprintf(out, "relative minor: %s minor\n", relativeMinor(ks.Key))
		return nil
	},
}

// lookupKeySignature accepts either spelling of a key ("A#" finds Bb).
func lookupKeySignature(raw string) (theory.KeySignature, error) {
	key, err := parseRoot(raw)
	if err != nil {
		return theory.KeySignature{}, err
	}
	c, err := pitch.Parse(key)
	if err != nil {
		return theory.KeySignature{}, err
	}
	for _, spelling := range strings.Split(c.Display(), "/") {
		if ks, err := theory.KeySignatureOf(spelling); err == nil {
			return ks, nil
		}
	}
	_, err = theory.KeySignatureOf(key)
	return theory.KeySignature{}, vocabularyError(err, theory.Keys())
}

// findKey names the major key whose signature lists raw's accidentals in
// order.
func findKey(raw string) (string, error) {
	var accidentals []string
	for _, f := range strings.Fields(strings.ReplaceAll(raw, ",", " ")) {
		n, err := parseRoot(f)
		if err != nil {
			return "", err
		}
		accidentals = append(accidentals, n)
	}
	key, ok := theory.KeyForSignature(accidentals)
	if !ok {
		return "", fmt.Errorf("no major key has the signature %q", strings.Join(accidentals, " "))
	}
	return key, nil
}

func accidentalText(ks theory.KeySignature) string {
	if len(ks.Accidentals) == 0 {
		return "no sharps or flats"
	}
	return strings.Join(ks.Accidentals, " ")
}

func relativeMinor(key string) string {
	c, err := pitch.Parse(key)
	if err != nil {
		return "?"
	}
	return c.Transpose(9).Display()
}

func init() {
	keysigCmd.Flags().String("find", "", `Accidentals in signature order, e.g. "Bb Eb"`)
}
