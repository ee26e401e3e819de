package practice

import (
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/practice"
	"github.com/abhisek/fretwise/internal/randutil"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// PracticeScreen deals a chord set and a strum pattern to warm up with.
type PracticeScreen struct {
	rng    *rand.Rand
	chords []practice.Chord
	strum  practice.Pattern
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New deals the first set. A nil rng is seeded from the OS.
func New(rng *rand.Rand) *PracticeScreen {
	if rng == nil {
		rng = randutil.NewRandom()
	}
	p := &PracticeScreen{rng: rng}
	p.dealChords()
	p.dealStrum()
	return p
}

func (p *PracticeScreen) Init() tea.Cmd { return nil }

func (p *PracticeScreen) Title() string { return "Practice" }

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Deal both"},
		{Key: "C", Description: "New chords"},
		{Key: "S", Description: "New strum"},
		{Key: "Esc", Description: "Back"},
	}
}

// Chords returns the current chord set.
func (p *PracticeScreen) Chords() []practice.Chord { return p.chords }

// Strum returns the current pattern.
func (p *PracticeScreen) Strum() practice.Pattern { return p.strum }

func (p *PracticeScreen) dealChords() { p.chords = practice.ChordSet(p.rng) }

func (p *PracticeScreen) dealStrum() {
	p.strum = practice.Strum(p.rng, practice.DefaultRestProbability)
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "r", "enter":
		p.dealChords()
		p.dealStrum()
	case "c":
		p.dealChords()
	case "s":
		p.dealStrum()
	}
	return p, nil
}

func (p *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	chordStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	// Four chords per row.
	var rows []string
	for i := 0; i < len(p.chords); i += 4 {
		end := min(i+4, len(p.chords))
		rows = append(rows, chordStyle.Render(practice.FormatChordSet(p.chords[i:end])))
	}

	counts, strokes := p.strum.Lines()
	strum := theme.Hint.Render(counts) + "\n" +
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(strokes)

	return strings.Join([]string{
		layout.Centered(components.TitledCard("Chords", strings.Join(rows, "\n"), cw), width),
		layout.Centered(components.TitledCard("Strum", strum, cw), width),
	}, "\n\n")
}
