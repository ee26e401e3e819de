package keyboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/theory"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen() (*KeyboardScreen, *audio.RecordingSink) {
	sink := &audio.RecordingSink{}
	return New(theory.NewKeyboard(3, 2), audio.Sine, sink, nil), sink
}

func TestKeyboard_Defaults(t *testing.T) {
	k := New(theory.Keyboard{}, "", nil, nil)
	if k.Keyboard() != theory.DefaultKeyboard() {
		t.Errorf("keyboard = %+v, want default", k.Keyboard())
	}
	if k.Waveform() != audio.DefaultWaveform {
		t.Errorf("waveform = %s, want %s", k.Waveform(), audio.DefaultWaveform)
	}
	if k.Status() != "C3–B5 · triangle" {
		t.Errorf("Status = %q", k.Status())
	}
}

func TestKeyboard_PlayKeys(t *testing.T) {
	k, sink := newTestScreen()

	tests := []struct {
		key  rune
		midi int
	}{
		{'a', 48},
		{'w', 49},
		{'j', 59},
		{'k', 60},
	}
	for _, tt := range tests {
		_, cmd := k.Update(keyPress(tt.key))
		if cmd == nil {
			t.Errorf("key %c: expected a release tick", tt.key)
		}
		if !sink.Held(tt.midi) || !k.Held(tt.midi) {
			t.Errorf("key %c: MIDI %d should sound", tt.key, tt.midi)
		}
	}

	if _, cmd := k.Update(keyPress('q')); cmd != nil {
		t.Error("unmapped key should do nothing")
	}
}

func TestKeyboard_ReleaseMatchesLatestPress(t *testing.T) {
	k, sink := newTestScreen()
	k.Update(keyPress('a'))
	first := k.held[48]
	k.Update(keyPress('a'))

	k.Update(releaseMsg{midi: 48, id: first})
	if !sink.Held(48) {
		t.Fatal("release of the first press cut off the second")
	}

	k.Update(releaseMsg{midi: 48, id: k.held[48]})
	if sink.Held(48) || k.Held(48) {
		t.Error("release of the latest press should silence the note")
	}
}

func TestKeyboard_OctaveShift(t *testing.T) {
	k, sink := newTestScreen()
	k.Update(keyPress('x'))
	k.Update(keyPress('a'))
	if !sink.Held(60) {
		t.Error("after x, a should play C4")
	}

	for range 10 {
		k.Update(keyPress('z'))
	}
	if k.Keyboard().StartOctave != theory.MinStartOctave {
		t.Errorf("start octave = %d, want clamp at %d", k.Keyboard().StartOctave, theory.MinStartOctave)
	}
}

func TestKeyboard_WaveformCycle(t *testing.T) {
	k, sink := newTestScreen()
	if sink.Waveform() != audio.Sine {
		t.Fatalf("sink waveform = %q, want sine on open", sink.Waveform())
	}
	k.Update(keyPress('c'))
	if k.Waveform() != audio.Triangle || sink.Waveform() != audio.Triangle {
		t.Errorf("after c: screen %s, sink %s, want triangle", k.Waveform(), sink.Waveform())
	}
}

func TestKeyboard_CloseReleasesNotes(t *testing.T) {
	k, sink := newTestScreen()
	k.Update(keyPress('a'))
	k.Update(keyPress('s'))
	k.Close()
	if sink.Held(48) || sink.Held(50) {
		t.Error("Close should silence held notes")
	}
}

func TestKeyboard_View(t *testing.T) {
	k, _ := newTestScreen()
	view := k.View(100, 30)
	if !strings.Contains(view, "Press a key") {
		t.Error("expected the idle prompt")
	}
	k.Update(keyPress('h'))
	if view := k.View(100, 30); !strings.Contains(view, "A3  220.00 Hz") {
		t.Errorf("expected the last note readout, got:\n%s", view)
	}
}
