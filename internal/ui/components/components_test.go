package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestContentWidth(t *testing.T) {
	cases := map[int]int{10: 20, 50: 44, 66: 60, 200: 60}
	for frame, want := range cases {
		if got := ContentWidth(frame); got != want {
			t.Errorf("ContentWidth(%d) = %d, want %d", frame, got, want)
		}
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}, {Label: "b"}, {Label: "c", Disabled: true}, {Label: "d"}})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down: Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down at the end moved to %d", m.Selected)
	}
}

func TestMenu_DigitActivates(t *testing.T) {
	var opened string
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd { opened = label; return nil }}
	}
	m := NewMenu([]MenuItem{item("one"), item("two")})

	m, _ = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if opened != "two" || m.Selected != 1 {
		t.Errorf("opened %q, Selected %d", opened, m.Selected)
	}
	opened = ""
	m, _ = m.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	if opened != "" {
		t.Error("out-of-range digit activated an item")
	}
}

func TestMenu_GridColumns(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A1"}, {Label: "A2"}, {Label: "B1"}, {Label: "B2"}})
	m.Columns = 2
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Selected != 2 {
		t.Errorf("right: Selected = %d, want 2", m.Selected)
	}

	lines := strings.Split(m.Grid(12), "\n")
	var row string
	for _, l := range lines {
		if strings.Contains(l, "A1") {
			row = l
		}
	}
	if !strings.Contains(row, "B1") {
		t.Errorf("A1 and B1 should share a row, got %q", row)
	}
}

func TestQuestionTrack(t *testing.T) {
	track := NewQuestionTrack("", 5, []bool{true, false}, 3)
	want := []Mark{MarkCorrect, MarkWrong, MarkCurrent, MarkPending, MarkPending}
	for i, m := range track.Marks {
		if m != want[i] {
			t.Errorf("mark %d = %v, want %v", i, m, want[i])
		}
	}
	if got := track.View(40); !strings.Contains(got, "● ✗ ◉ ○ ○") {
		t.Errorf("View() = %q", got)
	}
}

func TestQuestionTrack_Narrow(t *testing.T) {
	track := NewQuestionTrack("", 10, nil, 10)
	if got := track.View(5); strings.Count(got, "○")+strings.Count(got, "◉") != 3 {
		t.Errorf("narrow track should keep the last 3 marks, got %q", got)
	}
}
