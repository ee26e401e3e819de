package quiz

import (
	qz "github.com/abhisek/fretwise/internal/quiz"
)

// advanceMsg fires when the feedback delay for one question ends. It is
// ignored unless both the session and the token still match.
type advanceMsg struct {
	SessionID string
	Token     qz.AdvanceToken
}
