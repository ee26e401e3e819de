package circle

import (
	"reflect"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/theory"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestCircle_Walk(t *testing.T) {
	c := New()
	if c.Selected() != "C" {
		t.Fatalf("Selected = %s, want C", c.Selected())
	}
	c.Update(specialKey(tea.KeyRight))
	if c.Selected() != "G" {
		t.Errorf("after right: %s, want G", c.Selected())
	}
	c.Update(specialKey(tea.KeyLeft))
	c.Update(specialKey(tea.KeyLeft))
	if c.Selected() != "F" {
		t.Errorf("after two lefts: %s, want F (wraps)", c.Selected())
	}
}

func TestCircle_TabKeepsKey(t *testing.T) {
	c := New()
	for range 7 {
		c.Update(specialKey(tea.KeyRight))
	}
	if c.Selected() != "Db" {
		t.Fatalf("Selected = %s, want Db", c.Selected())
	}
	c.Update(specialKey(tea.KeyTab))
	if c.Direction() != theory.Down || c.Status() != "down" {
		t.Errorf("direction = %v, want down", c.Direction())
	}
	if c.Selected() != "Db" {
		t.Errorf("after tab: %s, want Db", c.Selected())
	}
}

func TestKeyDetails(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"C", []string{"C major: no sharps or flats", "relative minor: A minor"}},
		{"Eb", []string{"Eb major: Bb Eb Ab", "relative minor: C minor"}},
		{"F#/Gb", []string{"relative minor: D#/Eb minor"}},
	}
	for _, tt := range tests {
		if got := keyDetails(tt.key); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("keyDetails(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCircle_View(t *testing.T) {
	c := New()
	view := c.View(100, 30)
	for _, want := range []string{"fifths", "C major", "relative minor: A minor"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
