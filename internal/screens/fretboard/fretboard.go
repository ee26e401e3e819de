package fretboard

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/diagram"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// FretboardScreen shows every note on the neck, optionally filtered to one
// note or one scale.
type FretboardScreen struct {
	board  theory.Fretboard
	mode   theory.FilterMode
	note   pitch.Class
	root   pitch.Class
	scale  int
	scales []string
	filter theory.Filter
	typing bool
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*FretboardScreen)(nil)
var _ screen.KeyHintProvider = (*FretboardScreen)(nil)
var _ screen.StatusProvider = (*FretboardScreen)(nil)
var _ screen.EscapeHandler = (*FretboardScreen)(nil)

// New shows the whole neck with no filter.
func New(board theory.Fretboard) *FretboardScreen {
	if len(board.Tuning) == 0 {
		board = theory.StandardFretboard()
	}
	return &FretboardScreen{
		board:  board,
		scales: theory.ScaleTypes(),
		filter: theory.AllNotes(),
	}
}

func (f *FretboardScreen) Init() tea.Cmd { return nil }

func (f *FretboardScreen) Title() string { return "Fretboard" }

func (f *FretboardScreen) Status() string { return f.filter.Describe() }

// HandlesEscape keeps Esc for cancelling the note prompt.
func (f *FretboardScreen) HandlesEscape() bool { return f.typing }

// Filter returns the active highlight.
func (f *FretboardScreen) Filter() theory.Filter { return f.filter }

func (f *FretboardScreen) KeyHints() []layout.KeyHint {
	if f.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Show note"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: "Filter"}}
	switch f.mode {
	case theory.FilterNote:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Note"}, layout.KeyHint{Key: "/", Description: "Type a note"})
	case theory.FilterScale:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Root"}, layout.KeyHint{Key: "↑↓", Description: "Scale"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (f *FretboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if f.typing {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return f, cmd
		}
		return f, nil
	}

	if f.typing {
		return f.handleTyping(kmsg)
	}

	switch kmsg.String() {
	case "tab":
		f.mode = (f.mode + 1) % 3
	case "left", "h":
		f.step(-1)
	case "right", "l":
		f.step(1)
	case "up", "k":
		if f.mode == theory.FilterScale {
			f.scale = (f.scale - 1 + len(f.scales)) % len(f.scales)
		}
	case "down", "j":
		if f.mode == theory.FilterScale {
			f.scale = (f.scale + 1) % len(f.scales)
		}
	case "/":
		f.typing = true
		f.errMsg = ""
		f.input = components.NewTextInput("e.g. Bb", true, 8)
		return f, f.input.Init()
	default:
		return f, nil
	}
	f.applyFilter()
	return f, nil
}

func (f *FretboardScreen) handleTyping(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		f.typing = false
		return f, nil
	case "enter":
		filter, err := theory.OnlyNote(f.input.Value())
		if err != nil {
			f.errMsg = err.Error()
			return f, nil
		}
		f.typing = false
		f.errMsg = ""
		f.mode = theory.FilterNote
		f.note, _ = pitch.Parse(filter.Note)
		f.filter = filter
		return f, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(kmsg)
	return f, cmd
}

func (f *FretboardScreen) step(delta int) {
	switch f.mode {
	case theory.FilterNote:
		f.note = f.note.Transpose(delta)
	case theory.FilterScale:
		f.root = f.root.Transpose(delta)
	}
}

func (f *FretboardScreen) applyFilter() {
	var err error
	switch f.mode {
	case theory.FilterNote:
		f.filter, err = theory.OnlyNote(f.note.Name())
	case theory.FilterScale:
		f.filter, err = theory.OnlyScale(f.root.Name(), f.scales[f.scale])
	default:
		f.filter = theory.AllNotes()
	}
	if err != nil {
		f.errMsg = err.Error()
		f.filter = theory.AllNotes()
	}
}

func (f *FretboardScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render(strings.ToUpper(f.filter.Describe())))
	sections = append(sections, layout.Centered(diagram.Fretboard(f.board, f.filter, diagram.Styled), width))

	if f.filter.Mode == theory.FilterScale {
		if notes, err := theory.BuildScale(f.filter.Root, f.filter.Scale); err == nil {
			display := make([]string, len(notes))
			for i, n := range notes {
				display[i], _ = pitch.Display(n)
			}
			sections = append(sections, layout.Line(strings.Join(display, "  "), theme.TextDim, width))
		}
	}

	if f.typing {
		sections = append(sections, layout.Centered("Note: "+f.input.View(), width))
	}
	if f.errMsg != "" {
		sections = append(sections, layout.Line(f.errMsg, theme.Error, width))
	}
	return strings.Join(sections, "\n\n")
}
