package router

import (
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/screen"
)

type fakeScreen struct {
	title  string
	inits  int
	closed bool
	seen   []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.title }
func (f *fakeScreen) Title() string        { return f.title }

// closingScreen also implements screen.Closer.
type closingScreen struct{ fakeScreen }

func (c *closingScreen) Close() tea.Cmd {
	c.closed = true
	return nil
}

func newStack(titles ...string) (*Router, []*closingScreen) {
	screens := make([]*closingScreen, len(titles))
	for i, t := range titles {
		screens[i] = &closingScreen{fakeScreen{title: t}}
	}
	r := New(screens[0])
	for _, s := range screens[1:] {
		r.Push(s)
	}
	return r, screens
}

func TestPushRunsInit(t *testing.T) {
	r, screens := newStack("Home", "Quiz")
	if r.Depth() != 2 || r.Active() != screens[1] {
		t.Fatalf("active = %q at depth %d", r.Active().Title(), r.Depth())
	}
	if screens[1].inits != 1 {
		t.Errorf("Init ran %d times", screens[1].inits)
	}
	if screens[0].inits != 0 {
		t.Error("root screen is initialised by the app, not the router")
	}
}

func TestPopClosesTopOnly(t *testing.T) {
	r, screens := newStack("Home", "Keyboard")
	r.Update(PopScreenMsg{})

	if r.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", r.Active().Title())
	}
	if !screens[1].closed {
		t.Error("popped screen was not closed")
	}
	if screens[0].closed {
		t.Error("root screen closed")
	}
}

func TestPopKeepsRoot(t *testing.T) {
	r, screens := newStack("Home")
	r.Pop()
	if r.Depth() != 1 || screens[0].closed {
		t.Errorf("root popped: depth %d closed %v", r.Depth(), screens[0].closed)
	}
}

func TestReplace(t *testing.T) {
	r, screens := newStack("Home", "Quiz", "Chord tones")
	summary := &fakeScreen{title: "Results"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 3 {
		t.Errorf("depth = %d, want 3", r.Depth())
	}
	if r.Active() != summary || summary.inits != 1 {
		t.Error("replacement not active or not initialised")
	}
	if !screens[2].closed {
		t.Error("replaced screen was not closed")
	}
}

func TestUnwindClosesEverythingAboveRoot(t *testing.T) {
	r, screens := newStack("Home", "Quiz", "Metronome")
	r.Unwind()

	if r.Depth() != 1 {
		t.Fatalf("depth = %d after Unwind", r.Depth())
	}
	for _, s := range screens[1:] {
		if !s.closed {
			t.Errorf("%s not closed", s.title)
		}
	}
	if screens[0].closed {
		t.Error("root closed by Unwind")
	}
}

func TestTrail(t *testing.T) {
	r, _ := newStack("Home", "Quiz", "Name that scale")
	want := []string{"Home", "Quiz", "Name that scale"}
	if got := r.Trail(); !slices.Equal(got, want) {
		t.Errorf("Trail() = %v, want %v", got, want)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	r, screens := newStack("Home", "Circle")
	r.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if len(screens[1].seen) != 1 || len(screens[0].seen) != 0 {
		t.Errorf("messages went to the wrong screen: root %d, top %d", len(screens[0].seen), len(screens[1].seen))
	}
	if got := r.View(80, 24); got != "Circle" {
		t.Errorf("View() = %q", got)
	}
}

func TestCommands(t *testing.T) {
	s := &fakeScreen{title: "x"}
	if msg, ok := PushCmd(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Errorf("PushCmd produced %#v", msg)
	}
	if _, ok := PopCmd()().(PopScreenMsg); !ok {
		t.Error("PopCmd should produce PopScreenMsg")
	}
	if msg, ok := ReplaceCmd(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Errorf("ReplaceCmd produced %#v", msg)
	}
}
