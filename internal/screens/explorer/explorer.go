// Package explorer is the chord and scale browser: pick a root and a type,
// see the notes, the formula and where they sit on a keyboard, and hear them.
package explorer

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/midiexport"
	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/diagram"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// Kind selects chords or scales.
type Kind int

const (
	Chords Kind = iota
	Scales
)

func (k Kind) String() string {
	if k == Scales {
		return "Scales"
	}
	return "Chords"
}

// playOctave is where played and pictured voicings start.
const playOctave = 4

// holdDuration is how long a played chord or scale rings.
const holdDuration = 1500 * time.Millisecond

type releaseMsg struct{ gen int }

// ExplorerScreen browses the formula library.
type ExplorerScreen struct {
	kind    Kind
	root    pitch.Class
	typeIdx [2]int
	types   [2][]string

	sink     audio.Sink
	sounding []uint8
	gen      int
	errMsg   string
}

var _ screen.Screen = (*ExplorerScreen)(nil)
var _ screen.KeyHintProvider = (*ExplorerScreen)(nil)
var _ screen.Closer = (*ExplorerScreen)(nil)

// New opens the browser on C major. A nil sink plays nothing.
func New(sink audio.Sink) *ExplorerScreen {
	if sink == nil {
		sink = audio.NopSink{}
	}
	return &ExplorerScreen{
		sink:  sink,
		types: [2][]string{theory.ChordTypes(), theory.ScaleTypes()},
	}
}

func (e *ExplorerScreen) Init() tea.Cmd { return nil }

func (e *ExplorerScreen) Title() string { return "Chords & Scales" }

func (e *ExplorerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Chords/Scales"},
		{Key: "←→", Description: "Root"},
		{Key: "↑↓", Description: "Type"},
		{Key: "P", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

// Kind returns whether chords or scales are shown.
func (e *ExplorerScreen) Kind() Kind { return e.kind }

// Root returns the selected root.
func (e *ExplorerScreen) Root() pitch.Class { return e.root }

// TypeName returns the selected chord or scale type.
func (e *ExplorerScreen) TypeName() string {
	return e.types[e.kind][e.typeIdx[e.kind]]
}

// Notes builds the current chord or scale.
func (e *ExplorerScreen) Notes() ([]string, error) {
	if e.kind == Scales {
		return theory.BuildScale(e.root.Name(), e.TypeName())
	}
	return theory.BuildChord(e.root.Name(), e.TypeName())
}

func (e *ExplorerScreen) formula() theory.Formula {
	if e.kind == Scales {
		return theory.MustScaleFormula(e.TypeName())
	}
	return theory.MustChordFormula(e.TypeName())
}

func (e *ExplorerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case releaseMsg:
		if msg.gen == e.gen {
			e.release()
		}
		return e, nil
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *ExplorerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		e.kind = 1 - e.kind
	case "left", "h":
		e.root = e.root.Transpose(-1)
	case "right", "l":
		e.root = e.root.Transpose(1)
	case "up", "k":
		n := len(e.types[e.kind])
		e.typeIdx[e.kind] = (e.typeIdx[e.kind] - 1 + n) % n
	case "down", "j":
		e.typeIdx[e.kind] = (e.typeIdx[e.kind] + 1) % len(e.types[e.kind])
	case "p", "space", " ":
		return e, e.play()
	default:
		return e, nil
	}
	e.errMsg = ""
	return e, nil
}

// play sounds the current selection and schedules its release. A new play
// supersedes the pending release of the previous one.
func (e *ExplorerScreen) play() tea.Cmd {
	notes, err := e.Notes()
	if err != nil {
		e.errMsg = err.Error()
		return nil
	}
	keys, err := midiexport.Voice(notes, playOctave)
	if err != nil {
		e.errMsg = err.Error()
		return nil
	}
	e.release()
	for _, k := range keys {
		if err := e.sink.NoteOn(int(k), pitch.Frequency(int(k))); err != nil {
			e.errMsg = err.Error()
		}
	}
	e.sounding = keys
	e.gen++
	gen := e.gen
	return tea.Tick(holdDuration, func(time.Time) tea.Msg { return releaseMsg{gen: gen} })
}

func (e *ExplorerScreen) release() {
	for _, k := range e.sounding {
		_ = e.sink.NoteOff(int(k))
	}
	e.sounding = nil
}

// Close silences anything still ringing.
func (e *ExplorerScreen) Close() tea.Cmd {
	e.gen++
	e.release()
	return nil
}

// keySignature returns the accidentals line for major scales whose root
// has an entry in the key-signature table.
func (e *ExplorerScreen) keySignature() (string, bool) {
	if e.kind != Scales || e.TypeName() != "Major" {
		return "", false
	}
	for _, spelling := range strings.Split(e.root.Display(), "/") {
		ks, err := theory.KeySignatureOf(spelling)
		if err != nil {
			continue
		}
		if len(ks.Accidentals) == 0 {
			return ks.Key + " major: no sharps or flats", true
		}
		return fmt.Sprintf("%s major: %s", ks.Key, strings.Join(ks.Accidentals, " ")), true
	}
	return "", false
}

func (e *ExplorerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	tabs := make([]string, 2)
	for k := Chords; k <= Scales; k++ {
		if k == e.kind {
			tabs[k] = theme.Selected.Render("[" + k.String() + "]")
		} else {
			tabs[k] = theme.Unselected.Render(" " + k.String() + " ")
		}
	}
	sections = append(sections, layout.Centered(strings.Join(tabs, "   "), width))

	heading := e.root.Display() + " " + e.TypeName()
	sections = append(sections, theme.Title.Width(width).Render(heading))

	notes, err := e.Notes()
	if err != nil {
		sections = append(sections, layout.Line(err.Error(), theme.Error, width))
		return strings.Join(sections, "\n\n")
	}
	display := make([]string, len(notes))
	for i, n := range notes {
		display[i], _ = pitch.Display(n)
	}

	noteStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	card := []string{noteStyle.Render(strings.Join(display, "  "))}
	offsets := make([]string, len(e.formula()))
	for i, o := range e.formula() {
		offsets[i] = fmt.Sprint(o)
	}
	card = append(card, theme.Hint.Render("semitones: "+strings.Join(offsets, " ")))
	if ks, ok := e.keySignature(); ok {
		card = append(card, theme.Body.Render(ks))
	}
	sections = append(sections, components.ArcadeCard(strings.Join(card, "\n"), cw))

	if keys, err := midiexport.Voice(notes, playOctave); err == nil {
		marked := make(map[int]bool, len(keys))
		for _, k := range keys {
			marked[int(k)] = true
		}
		pressed := make(map[int]bool, len(e.sounding))
		for _, k := range e.sounding {
			pressed[int(k)] = true
		}
		kb := theory.NewKeyboard(playOctave, 2)
		board := diagram.Keyboard(kb, diagram.KeyboardOptions{Marked: marked, Pressed: pressed}, diagram.Styled)
		sections = append(sections, layout.Centered(board, width))
	}

	if e.errMsg != "" {
		sections = append(sections, layout.Line(e.errMsg, theme.Error, width))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, strings.Join(sections, "\n\n"))
}
