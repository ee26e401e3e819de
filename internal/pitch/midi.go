package pitch

import (
	"fmt"
	"math"
)

// Reference tuning: A4 is MIDI note 69 at 440 Hz.
const (
	ReferenceMIDI      = 69
	ReferenceFrequency = 440.0
)

// MIDI returns the MIDI note number of class c in the given octave, with
// middle C (C4) at 60.
func MIDI(c Class, octave int) int {
	return Count*(octave+1) + int(Wrap(int(c)))
}

// FromMIDI splits a MIDI note number into its pitch class and octave.
func FromMIDI(n int) (Class, int) {
	octave := n/Count - 1
	if n < 0 && n%Count != 0 {
		octave--
	}
	return Wrap(n), octave
}

// Frequency returns the equal-tempered frequency of a MIDI note in Hz.
func Frequency(midi int) float64 {
	return ReferenceFrequency * math.Pow(2, float64(midi-ReferenceMIDI)/Count)
}

// NoteLabel renders a MIDI note as name plus octave, e.g. "A4" or "C#3".
func NoteLabel(midi int) string {
	c, octave := FromMIDI(midi)
	return fmt.Sprintf("%s%d", c.Name(), octave)
}
