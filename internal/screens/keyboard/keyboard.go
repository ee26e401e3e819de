package keyboard

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/diagram"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// playKeys maps the home row (white keys) and the row above (black keys)
// to semitones above the lowest C on screen.
const playKeys = "awsedftgyhujk"

// noteLength is how long a tapped key sounds. Terminals report presses
// but not releases, so every note is a fixed-length tap.
const noteLength = 600 * time.Millisecond

type releaseMsg struct {
	midi int
	id   int
}

// KeyboardScreen is a playable piano.
type KeyboardScreen struct {
	kb     theory.Keyboard
	wave   audio.Waveform
	sink   audio.Sink
	logger *slog.Logger

	held   map[int]int // MIDI note -> id of the press that is sounding
	nextID int
	last   string
	errMsg string
}

var _ screen.Screen = (*KeyboardScreen)(nil)
var _ screen.KeyHintProvider = (*KeyboardScreen)(nil)
var _ screen.StatusProvider = (*KeyboardScreen)(nil)
var _ screen.Closer = (*KeyboardScreen)(nil)

// New creates a keyboard over kb. An empty waveform falls back to the
// default shape.
func New(kb theory.Keyboard, wave audio.Waveform, sink audio.Sink, logger *slog.Logger) *KeyboardScreen {
	if kb.Octaves == 0 {
		kb = theory.DefaultKeyboard()
	}
	if wave == "" {
		wave = audio.DefaultWaveform
	}
	if sink == nil {
		sink = audio.NopSink{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	k := &KeyboardScreen{kb: kb, wave: wave, sink: sink, logger: logger, held: make(map[int]int)}
	k.applyWaveform()
	return k
}

func (k *KeyboardScreen) Init() tea.Cmd { return nil }

func (k *KeyboardScreen) Title() string { return "Keyboard" }

func (k *KeyboardScreen) Status() string {
	return fmt.Sprintf("%s–%s · %s", pitch.NoteLabel(k.kb.Lowest()), pitch.NoteLabel(k.kb.Highest()), k.wave)
}

func (k *KeyboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "A–K", Description: "Play"},
		{Key: "Z/X", Description: "Octave"},
		{Key: "C", Description: "Waveform"},
		{Key: "Esc", Description: "Back"},
	}
}

// Keyboard returns the visible range.
func (k *KeyboardScreen) Keyboard() theory.Keyboard { return k.kb }

// Waveform returns the current oscillator shape.
func (k *KeyboardScreen) Waveform() audio.Waveform { return k.wave }

// Held reports whether a note is sounding.
func (k *KeyboardScreen) Held(midi int) bool {
	_, ok := k.held[midi]
	return ok
}

// bindings maps each playable MIDI note to its computer key.
func (k *KeyboardScreen) bindings() map[int]string {
	m := make(map[int]string, len(playKeys))
	base := k.kb.Lowest()
	for i, r := range playKeys {
		m[base+i] = string(r)
	}
	return m
}

func (k *KeyboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case releaseMsg:
		if id, ok := k.held[msg.midi]; ok && id == msg.id {
			k.noteOff(msg.midi)
		}
		return k, nil
	case tea.KeyMsg:
		return k, k.handleKey(msg.String())
	}
	return k, nil
}

func (k *KeyboardScreen) handleKey(key string) tea.Cmd {
	switch key {
	case "z":
		k.kb = k.kb.ShiftOctave(-1)
		k.logger.Debug("keyboard octave", "start", k.kb.StartOctave)
		return nil
	case "x":
		k.kb = k.kb.ShiftOctave(1)
		k.logger.Debug("keyboard octave", "start", k.kb.StartOctave)
		return nil
	case "c":
		k.wave = k.wave.Next()
		k.applyWaveform()
		return nil
	}
	if len(key) != 1 {
		return nil
	}
	i := strings.Index(playKeys, key)
	if i < 0 {
		return nil
	}
	return k.play(k.kb.Lowest() + i)
}

func (k *KeyboardScreen) applyWaveform() {
	if ws, ok := k.sink.(audio.WaveformSetter); ok {
		ws.SetWaveform(k.wave)
	}
	k.logger.Debug("keyboard waveform", "waveform", k.wave)
}

// play restarts the note if it is already sounding so the newest press
// owns the release.
func (k *KeyboardScreen) play(midi int) tea.Cmd {
	if k.Held(midi) {
		k.noteOff(midi)
	}
	if err := k.sink.NoteOn(midi, pitch.Frequency(midi)); err != nil {
		k.errMsg = err.Error()
		k.logger.Warn("note on failed", "midi", midi, "error", err)
		return nil
	}
	k.errMsg = ""
	k.nextID++
	id := k.nextID
	k.held[midi] = id
	k.last = fmt.Sprintf("%s  %.2f Hz", pitch.NoteLabel(midi), pitch.Frequency(midi))
	return tea.Tick(noteLength, func(time.Time) tea.Msg {
		return releaseMsg{midi: midi, id: id}
	})
}

func (k *KeyboardScreen) noteOff(midi int) {
	if err := k.sink.NoteOff(midi); err != nil {
		k.logger.Warn("note off failed", "midi", midi, "error", err)
	}
	delete(k.held, midi)
}

// Close releases every sounding note. Pending release ticks find nothing
// to do.
func (k *KeyboardScreen) Close() tea.Cmd {
	for midi := range k.held {
		k.noteOff(midi)
	}
	return nil
}

func (k *KeyboardScreen) View(width, height int) string {
	pressed := make(map[int]bool, len(k.held))
	for midi := range k.held {
		pressed[midi] = true
	}
	board := diagram.Keyboard(k.kb, diagram.KeyboardOptions{
		Pressed:  pressed,
		Bindings: k.bindings(),
	}, diagram.Styled)

	var sections []string
	sections = append(sections, layout.Centered(board, width))

	last := k.last
	if last == "" {
		last = "Press a key to play"
	}
	sections = append(sections, layout.Line(last, theme.ArcadeYellow, width))
	sections = append(sections, layout.Line("waveform: "+string(k.wave), theme.TextDim, width))

	if k.errMsg != "" {
		sections = append(sections, layout.Line(k.errMsg, theme.Error, width))
	}
	return strings.Join(sections, "\n\n")
}
