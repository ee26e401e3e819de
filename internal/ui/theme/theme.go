package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Stage-light purple with warm amber for highlighted notes.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15") // Amber
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Cyan

	Ivory = lipgloss.Color("#F5F0E1") // white keys
	Ebony = lipgloss.Color("#111827") // black keys
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Banner is the home screen title art.
	Banner = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Notes on instrument diagrams.
var (
	// RootNote marks the tonic of a highlighted scale.
	RootNote = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(ArcadeYellow).
			Bold(true)

	// ActiveNote marks any other highlighted note.
	ActiveNote = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(ArcadeCyan)

	// MutedNote is a note outside the current filter.
	MutedNote = lipgloss.NewStyle().
			Foreground(Border)

	WhiteKey = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Ivory)

	BlackKey = lipgloss.NewStyle().
			Foreground(Text).
			Background(Ebony)

	PressedKey = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Accent).
			Bold(true)
)
