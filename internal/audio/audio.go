// Package audio describes the sound side of fretwise: metronome timing,
// the click and oscillator settings, and the Sink interface a playback
// backend implements. The terminal build ships a bell sink; MIDI files are
// written by the midiexport package.
package audio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const (
	MinBPM     = 20
	MaxBPM     = 300
	DefaultBPM = 80
)

// ErrTempoOutOfRange is returned for tempos outside [MinBPM, MaxBPM].
var ErrTempoOutOfRange = errors.New("tempo out of range")

// Interval returns the time between beats, 60000/bpm milliseconds.
func Interval(bpm int) (time.Duration, error) {
	if bpm < MinBPM || bpm > MaxBPM {
		return 0, fmt.Errorf("%w: %d bpm (want %d-%d)", ErrTempoOutOfRange, bpm, MinBPM, MaxBPM)
	}
	return time.Minute / time.Duration(bpm), nil
}

// Click is the metronome tick sound: a short, fast-decaying sine.
var Click = Tone{Waveform: Sine, Frequency: 1200, Duration: 20 * time.Millisecond, Gain: 0.5}

// Tone describes a synthesized sound.
type Tone struct {
	Waveform  Waveform
	Frequency float64
	Duration  time.Duration
	Gain      float64
}

// Waveform is an oscillator shape.
type Waveform string

const (
	Sine     Waveform = "sine"
	Triangle Waveform = "triangle"
	Square   Waveform = "square"
	Sawtooth Waveform = "sawtooth"
)

// DefaultWaveform is used by the keyboard until the user cycles it.
const DefaultWaveform = Triangle

var waveforms = []Waveform{Sine, Triangle, Square, Sawtooth}

// Waveforms lists the shapes in cycle order.
func Waveforms() []Waveform {
	return append([]Waveform(nil), waveforms...)
}

// Next returns the following shape in the cycle, wrapping at the end.
func (w Waveform) Next() Waveform {
	for i, v := range waveforms {
		if v == w {
			return waveforms[(i+1)%len(waveforms)]
		}
	}
	return DefaultWaveform
}

// ParseWaveform matches a shape name case-insensitively.
func ParseWaveform(s string) (Waveform, error) {
	for _, w := range waveforms {
		if strings.EqualFold(string(w), s) {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown waveform %q", s)
}

// Sink plays sounds. Implementations must be safe to call from the UI loop
// and should return quickly.
type Sink interface {
	Click(accent bool) error
	NoteOn(midi int, freq float64) error
	NoteOff(midi int) error
}

// WaveformSetter is implemented by sinks that synthesize notes and can
// change their oscillator shape.
type WaveformSetter interface {
	SetWaveform(Waveform)
}

// BellSink rings the terminal bell for clicks. Notes are silent: a
// terminal has no oscillator.
type BellSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellSink writes BEL characters to w.
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{w: w}
}

func (b *BellSink) Click(bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}

func (b *BellSink) NoteOn(int, float64) error { return nil }
func (b *BellSink) NoteOff(int) error         { return nil }

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Click(bool) error          { return nil }
func (NopSink) NoteOn(int, float64) error { return nil }
func (NopSink) NoteOff(int) error         { return nil }

// Event is one call recorded by RecordingSink.
type Event struct {
	Kind string // "click", "accent", "on", "off"
	MIDI int
	Freq float64
}

// RecordingSink remembers every call. It is used by tests and by the
// keyboard screen to show what is sounding.
type RecordingSink struct {
	mu     sync.Mutex
	events []Event
	held   map[int]bool
	wave   Waveform
}

func (r *RecordingSink) Click(accent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kind := "click"
	if accent {
		kind = "accent"
	}
	r.events = append(r.events, Event{Kind: kind, Freq: Click.Frequency})
	return nil
}

// NoteOn ignores a note that is already held.
func (r *RecordingSink) NoteOn(midi int, freq float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.held == nil {
		r.held = make(map[int]bool)
	}
	if r.held[midi] {
		return nil
	}
	r.held[midi] = true
	r.events = append(r.events, Event{Kind: "on", MIDI: midi, Freq: freq})
	return nil
}

func (r *RecordingSink) NoteOff(midi int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.held[midi] {
		return nil
	}
	delete(r.held, midi)
	r.events = append(r.events, Event{Kind: "off", MIDI: midi})
	return nil
}

// Events returns a copy of the recorded calls.
func (r *RecordingSink) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Held reports whether a note is currently on.
func (r *RecordingSink) Held(midi int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.held[midi]
}

func (r *RecordingSink) SetWaveform(w Waveform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wave = w
}

// Waveform returns the last shape set, or "" if none was.
func (r *RecordingSink) Waveform() Waveform {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wave
}
