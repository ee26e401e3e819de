package explorer

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/audio"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestExplorer_DefaultsToCMajorChord(t *testing.T) {
	e := New(nil)
	notes, err := e.Notes()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(notes, " "); got != "C E G" {
		t.Errorf("notes = %q, want %q", got, "C E G")
	}
	if e.Kind() != Chords {
		t.Errorf("kind = %v, want Chords", e.Kind())
	}
}

func TestExplorer_Navigation(t *testing.T) {
	e := New(nil)
	e.Update(specialKey(tea.KeyRight))
	e.Update(specialKey(tea.KeyDown))
	if e.Root().Name() != "C#" || e.TypeName() != "m" {
		t.Fatalf("got %s %s, want C# m", e.Root().Name(), e.TypeName())
	}

	e.Update(specialKey(tea.KeyLeft))
	e.Update(specialKey(tea.KeyLeft))
	if e.Root().Name() != "B" {
		t.Errorf("root = %s, want B (wraps below C)", e.Root().Name())
	}

	e.Update(specialKey(tea.KeyUp))
	e.Update(specialKey(tea.KeyUp))
	if e.TypeName() != "madd9" {
		t.Errorf("type = %s, want madd9 (wraps to the end)", e.TypeName())
	}
}

func TestExplorer_TabKeepsSelectionPerKind(t *testing.T) {
	e := New(nil)
	e.Update(specialKey(tea.KeyDown))
	e.Update(specialKey(tea.KeyTab))
	if e.Kind() != Scales || e.TypeName() != "Major" {
		t.Fatalf("got %v %s, want Scales Major", e.Kind(), e.TypeName())
	}
	e.Update(specialKey(tea.KeyTab))
	if e.TypeName() != "m" {
		t.Errorf("chord type = %s, want m to be remembered", e.TypeName())
	}
}

func TestExplorer_ViewShowsKeySignature(t *testing.T) {
	e := New(nil)
	e.Update(specialKey(tea.KeyTab))
	for range 10 {
		e.Update(specialKey(tea.KeyRight))
	}
	view := e.View(100, 40)
	for _, want := range []string{"A#/Bb Major", "Bb major: Bb Eb", "semitones: 0 2 4 5 7 9 11"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExplorer_NoKeySignatureForChords(t *testing.T) {
	e := New(nil)
	if _, ok := e.keySignature(); ok {
		t.Error("chords have no key signature")
	}
}

func TestExplorer_PlayAndRelease(t *testing.T) {
	sink := &audio.RecordingSink{}
	e := New(sink)

	_, cmd := e.Update(keyPress('p'))
	if cmd == nil {
		t.Fatal("expected a release tick")
	}
	for _, midi := range []int{60, 64, 67} {
		if !sink.Held(midi) {
			t.Errorf("note %d should be sounding", midi)
		}
	}

	// A release from an earlier play is ignored.
	e.Update(releaseMsg{gen: e.gen - 1})
	if !sink.Held(60) {
		t.Error("stale release silenced the chord")
	}

	e.Update(releaseMsg{gen: e.gen})
	if sink.Held(60) || sink.Held(64) || sink.Held(67) {
		t.Error("release should silence every note")
	}
}

func TestExplorer_CloseSilences(t *testing.T) {
	sink := &audio.RecordingSink{}
	e := New(sink)
	e.Update(keyPress('p'))
	gen := e.gen
	e.Close()
	if sink.Held(60) {
		t.Error("Close should release held notes")
	}
	if gen == e.gen {
		t.Error("Close should invalidate the pending release")
	}
}
