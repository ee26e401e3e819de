package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/randutil"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a ten-question theory quiz on the command line",
	Long: "Take a theory quiz without the TUI. Questions are printed one at a time;\n" +
		"type the answer, or the choice number in multiple-choice modes.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer logger.Close()

		rawMode, _ := cmd.Flags().GetString("mode")
		mode, err := quiz.ParseMode(rawMode)
		if err != nil {
			names := make([]string, 0, len(quiz.Modes()))
			for _, m := range quiz.Modes() {
				names = append(names, string(m))
			}
			return fmt.Errorf("%w (valid: %s)", err, strings.Join(names, ", "))
		}

		settings := cfg.QuizSettings()
		if n, _ := cmd.Flags().GetInt("questions"); n > 0 {
			settings.Questions = n
		}
		rng := seededRand(cmd)
		engine := quiz.NewEngine(quiz.NewGenerator(rng, settings, logger.Logger), settings, logger.Logger)

		return runQuiz(engine, mode, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// runQuiz drives one session over line-oriented input. Running out of
// input ends the quiz early and prints the partial summary.
func runQuiz(engine *quiz.Engine, mode quiz.Mode, in io.Reader, out io.Writer) error {
	s, err := engine.Start(quiz.Session{}, mode)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s · %d questions\n", mode.DisplayName(), s.Total)

	scanner := bufio.NewScanner(in)
	for s.Phase == quiz.PhaseInProgress {
		q := s.Current
		fmt.Fprintf(out, "\n[%d/%d] %s\n", s.Index, s.Total, q.Prompt)
		for i, c := range q.Choices {
			fmt.Fprintf(out, "  %d) %s\n", i+1, c)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		var v quiz.Verdict
		s, v, err = engine.Submit(s, resolveChoice(q, scanner.Text()))
		if err != nil {
			return err
		}
		if v.Correct {
			fmt.Fprintln(out, "✓ correct")
		} else {
			fmt.Fprintf(out, "✗ expected %s\n", v.Expected)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answer: %w", err)
	}

	printSummary(out, quiz.BuildSummary(s))
	return nil
}

// resolveChoice maps "1".."4" to the text of that choice.
func resolveChoice(q *quiz.Question, input string) string {
	input = strings.TrimSpace(input)
	if len(q.Choices) == 0 {
		return input
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Choices) {
		return q.Choices[n-1]
	}
	return input
}

func printSummary(out io.Writer, sum *quiz.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s  %d/%d correct (%.0f%%)\n", sum.Headline(), sum.Correct, sum.Total, sum.Accuracy*100)
	for _, r := range sum.Results {
		if r.Correct {
			continue
		}
		fmt.Fprintf(out, "  #%d %s\n     you: %s  answer: %s\n", r.Index, r.Prompt, r.Given, r.Expected)
	}
}

// seededRand honours --seed so runs can be replayed.
func seededRand(cmd *cobra.Command) *rand.Rand {
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		return randutil.New(seed)
	}
	return randutil.NewRandom()
}

func init() {
	quizCmd.Flags().String("mode", string(quiz.ModeChordInput), "Quiz mode: chordInput, chordChoice, scaleName, scaleNotes, keySigToKey or keyToKeySig")
	quizCmd.Flags().Int("questions", 0, "Number of questions (default 10)")
	quizCmd.Flags().Uint64("seed", 0, "Random seed for a repeatable quiz")
}
