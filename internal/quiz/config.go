package quiz

import "time"

// Config controls question generation and the session length.
type Config struct {
	// Questions is the number of questions per session.
	Questions int

	// FeedbackDelay is how long a verdict stays on screen before the
	// surface calls Advance.
	FeedbackDelay time.Duration

	// LenientKeySignatures grades keyToKeySig answers without regard to
	// accidental order.
	LenientKeySignatures bool

	// MaxChoiceAttempts bounds distractor draws per question.
	MaxChoiceAttempts int

	// MaxGenerateAttempts bounds regeneration after a failed validation.
	MaxGenerateAttempts int
}

// DefaultConfig returns the standard ten-question session.
func DefaultConfig() Config {
	return Config{
		Questions:           10,
		FeedbackDelay:       800 * time.Millisecond,
		MaxChoiceAttempts:   200,
		MaxGenerateAttempts: 3,
	}
}
