package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/fretwise/internal/randutil"
)

// ChoiceCount is the number of options in a multiple-choice question.
const ChoiceCount = 4

// ErrChoicePoolExhausted is returned when distractor generation cannot find
// enough distinct values within the attempt budget.
var ErrChoicePoolExhausted = errors.New("not enough distinct choices")

// BuildChoices collects ChoiceCount distinct strings, starting with correct
// and drawing distractors until the set is full, then shuffles them.
// draw is called at most maxAttempts times.
func BuildChoices(rng *rand.Rand, correct string, maxAttempts int, draw func() string) ([]string, error) {
	seen := map[string]bool{correct: true}
	choices := []string{correct}
	for attempt := 0; len(choices) < ChoiceCount; attempt++ {
		if attempt >= maxAttempts {
			return nil, fmt.Errorf("%w: got %d of %d after %d draws", ErrChoicePoolExhausted, len(choices), ChoiceCount, maxAttempts)
		}
		c := draw()
		if seen[c] {
			continue
		}
		seen[c] = true
		choices = append(choices, c)
	}
	randutil.ShuffleInPlace(rng, choices)
	return choices, nil
}

// FromPool returns a draw function that picks uniformly from pool.
func FromPool(rng *rand.Rand, pool []string) func() string {
	return func() string {
		return randutil.Pick(rng, pool)
	}
}
