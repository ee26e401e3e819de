package quiz

import (
	"slices"
	"strings"

	"github.com/abhisek/fretwise/internal/pitch"
)

// noneMarkers are accepted as "no accidentals" when the expected sequence is
// empty.
var noneMarkers = map[string]bool{
	"none":   true,
	"(none)": true,
	"-":      true,
}

// Grade compares the learner's input against the expected answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Sequence answers split on whitespace and commas and drop empty tokens
// - Each note is parsed free-form (case, ♯/♭ glyphs, flat aliases)
// - Unordered sequences are compared as sorted lists
// - A token that is not a note makes the answer incorrect
// - Single-string answers must match verbatim after trimming
func Grade(input string, answer Answer) Verdict {
	correct := check(strings.TrimSpace(input), answer)
	v := Verdict{Correct: correct, Expected: answer.String()}
	if correct {
		v.Message = "correct"
	} else {
		v.Message = "incorrect, expected: " + v.Expected
	}
	return v
}

func check(input string, answer Answer) bool {
	if !answer.Sequence {
		return input != "" && input == answer.Text
	}

	if len(answer.Notes) == 0 && noneMarkers[strings.ToLower(input)] {
		return true
	}

	given, ok := parseNotes(pitch.SplitNotes(input))
	if !ok {
		return false
	}
	want, ok := parseNotes(answer.Notes)
	if !ok {
		return false
	}
	if len(given) != len(want) {
		return false
	}
	if !answer.Ordered {
		slices.Sort(given)
		slices.Sort(want)
	}
	return slices.Equal(given, want)
}

// parseNotes maps every token to its canonical name.
func parseNotes(tokens []string) ([]string, bool) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		n, ok := pitch.ParseInput(tok)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
