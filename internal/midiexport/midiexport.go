// Package midiexport writes chords, scales and click tracks as Standard
// MIDI Files so they can be auditioned in any DAW or player.
package midiexport

import (
	"errors"
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/abhisek/fretwise/internal/pitch"
)

// Resolution is the number of ticks per quarter note.
const Resolution = 960

// General MIDI percussion: channel 10 (index 9), hi and low wood block.
const (
	ClickChannel = 9
	AccentNote   = 76
	ClickNote    = 77
)

// ErrNoNotes is returned when there is nothing to write.
var ErrNoNotes = errors.New("no notes to write")

// Options control voicing and playback of exported files.
type Options struct {
	Octave   int
	BPM      float64
	Velocity uint8
	Channel  uint8
}

// DefaultOptions starts at octave 4, 80 bpm.
func DefaultOptions() Options {
	return Options{Octave: 4, BPM: 80, Velocity: 90, Channel: 0}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BPM <= 0 {
		o.BPM = d.BPM
	}
	if o.Velocity == 0 {
		o.Velocity = d.Velocity
	}
	if o.Octave == 0 {
		o.Octave = d.Octave
	}
	return o
}

// Voice turns note names into ascending MIDI numbers starting at octave.
// A tone that would fall at or below the previous one moves up an octave.
func Voice(notes []string, octave int) ([]uint8, error) {
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}
	out := make([]uint8, 0, len(notes))
	prev := -1
	for _, n := range notes {
		c, err := pitch.Parse(n)
		if err != nil {
			return nil, err
		}
		m := pitch.MIDI(c, octave)
		for m <= prev {
			m += pitch.Count
		}
		if m < 0 || m > 127 {
			return nil, fmt.Errorf("note %s out of MIDI range at octave %d", n, octave)
		}
		out = append(out, uint8(m))
		prev = m
	}
	return out, nil
}

func newFile(name string, bpm float64) (*smf.SMF, smf.Track) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(Resolution)
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(bpm))
	return s, tr
}

func finish(w io.Writer, s *smf.SMF, tr smf.Track) error {
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write smf: %w", err)
	}
	return nil
}

// WriteChord writes the chord as one block held for a whole note.
func WriteChord(w io.Writer, name string, notes []string, opts Options) error {
	opts = opts.withDefaults()
	keys, err := Voice(notes, opts.Octave)
	if err != nil {
		return err
	}
	s, tr := newFile(name, opts.BPM)
	for _, k := range keys {
		tr.Add(0, midi.NoteOn(opts.Channel, k, opts.Velocity))
	}
	whole := uint32(4 * Resolution)
	for i, k := range keys {
		var delta uint32
		if i == 0 {
			delta = whole
		}
		tr.Add(delta, midi.NoteOff(opts.Channel, k))
	}
	return finish(w, s, tr)
}

// WriteScale writes the scale ascending in quarter notes and closes on the
// root an octave up.
func WriteScale(w io.Writer, name string, notes []string, opts Options) error {
	opts = opts.withDefaults()
	if len(notes) > 0 {
		notes = append(notes[:len(notes):len(notes)], notes[0])
	}
	keys, err := Voice(notes, opts.Octave)
	if err != nil {
		return err
	}
	s, tr := newFile(name, opts.BPM)
	for _, k := range keys {
		tr.Add(0, midi.NoteOn(opts.Channel, k, opts.Velocity))
		tr.Add(Resolution, midi.NoteOff(opts.Channel, k))
	}
	return finish(w, s, tr)
}

// WriteClick writes bars of quarter-note clicks with the first beat of each
// bar accented.
func WriteClick(w io.Writer, bars, beatsPerBar int, opts Options) error {
	opts = opts.withDefaults()
	if bars < 1 || beatsPerBar < 1 {
		return ErrNoNotes
	}
	s, tr := newFile("click", opts.BPM)
	const length = Resolution / 8
	for bar := 0; bar < bars; bar++ {
		for beat := 0; beat < beatsPerBar; beat++ {
			key := uint8(ClickNote)
			if beat == 0 {
				key = AccentNote
			}
			var delta uint32
			if bar > 0 || beat > 0 {
				delta = Resolution - length
			}
			tr.Add(delta, midi.NoteOn(ClickChannel, key, opts.Velocity))
			tr.Add(length, midi.NoteOff(ClickChannel, key))
		}
	}
	return finish(w, s, tr)
}
