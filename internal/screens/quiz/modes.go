package quiz

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/fretwise/internal/quiz"
	"github.com/abhisek/fretwise/internal/router"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/ui/components"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// modeBlurbs explain each mode under the menu.
var modeBlurbs = map[qz.Mode]string{
	qz.ModeChordInput:  "Type the notes of a chord.",
	qz.ModeChordChoice: "Pick the notes of a chord from four sets.",
	qz.ModeScaleName:   "Name the scale from its notes.",
	qz.ModeScaleNotes:  "Type the notes of a scale.",
	qz.ModeKeySigToKey: "Name the major key with these accidentals.",
	qz.ModeKeyToKeySig: "Type the accidentals of a major key.",
}

// ModeScreen lets the learner pick a quiz mode.
type ModeScreen struct {
	engine *qz.Engine
	menu   components.Menu
	logger *slog.Logger
}

var _ screen.Screen = (*ModeScreen)(nil)

// NewModeScreen lists every quiz mode.
func NewModeScreen(engine *qz.Engine, logger *slog.Logger) *ModeScreen {
	m := &ModeScreen{engine: engine, logger: logger}
	var items []components.MenuItem
	for _, mode := range qz.Modes() {
		items = append(items, components.MenuItem{
			Label: mode.DisplayName(),
			Action: func() tea.Cmd {
				return router.PushCmd(New(engine, mode, qz.Session{}, logger))
			},
		})
	}
	m.menu = components.NewMenu(items)
	return m
}

func (m *ModeScreen) Init() tea.Cmd { return nil }

func (m *ModeScreen) Title() string { return "Quiz" }

func (m *ModeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// SelectedMode returns the highlighted mode.
func (m *ModeScreen) SelectedMode() qz.Mode {
	return qz.Modes()[m.menu.Selected]
}

func (m *ModeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Choose a quiz"))

	if layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, layout.Centered(m.menu.View(), cw))
	} else {
		var buttons []string
		for i, item := range m.menu.Items {
			buttons = append(buttons, components.ArcadeButton(item.Label, i == m.menu.Selected, 28))
		}
		sections = append(sections, layout.Centered(strings.Join(buttons, "\n"), cw))
	}

	blurb := modeBlurbs[m.SelectedMode()]
	sections = append(sections, components.ArcadeCard(theme.Hint.Render(blurb), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
