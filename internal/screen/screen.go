package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider supplies the right-hand side of the header, e.g. the
// quiz score or the metronome tempo.
type StatusProvider interface {
	Status() string
}

// EscapeHandler screens receive Esc themselves instead of being popped.
// The quiz session uses it to ask before abandoning a run.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Closer screens release resources (held notes, running clicks) when they
// leave the stack.
type Closer interface {
	Close() tea.Cmd
}
