package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/audio"
	"github.com/abhisek/fretwise/internal/config"
	"github.com/abhisek/fretwise/internal/randutil"
	"github.com/abhisek/fretwise/internal/router"
	"github.com/abhisek/fretwise/internal/screens/fretboard"
	"github.com/abhisek/fretwise/internal/screens/metronome"
	"github.com/abhisek/fretwise/internal/theory"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m, err := newAppModel(Options{Rand: randutil.New(1)})
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestNewAppModel_BadTuning(t *testing.T) {
	cfg := config.Defaults()
	cfg.Frets = 0
	if _, err := newAppModel(Options{Config: cfg}); err == nil {
		t.Error("expected an error for an invalid fretboard")
	}
}

func TestApp_HomeView(t *testing.T) {
	m := newTestModel(t)
	content := m.render()
	for _, want := range []string{"fretwise", "Home", "QUIZ", "Ctrl+C"} {
		if !strings.Contains(content, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestApp_EscAtRootDoesNothing(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := send(m, tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc on the home screen should do nothing")
	}
}

func TestApp_EscDelegatedToScreen(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, router.PushScreenMsg{Screen: fretboard.New(theory.StandardFretboard())})
	m, _ = send(m, tea.KeyPressMsg{Code: '/', Text: "/"})

	m, cmd := send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc should cancel the prompt, not pop the screen")
		}
	}
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("second esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestApp_HeaderStatusAndHints(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, router.PushScreenMsg{Screen: metronome.New(96, 4, nil, nil)})
	content := m.render()
	for _, want := range []string{"Metronome", "96 BPM", "Beats/bar", "Ctrl+C"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_CtrlCClosesScreens(t *testing.T) {
	m := newTestModel(t)
	sink := &audio.RecordingSink{}
	met := metronome.New(120, 4, sink, nil)
	m, _ = send(m, router.PushScreenMsg{Screen: met})
	m, _ = send(m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if !met.Running() {
		t.Fatal("metronome should be running")
	}

	_, cmd := send(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if met.Running() {
		t.Error("quitting should stop the metronome")
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if strings.Contains(m.render(), "QUIZ") {
		t.Error("a tiny terminal should get the size message, not the menu")
	}
}
