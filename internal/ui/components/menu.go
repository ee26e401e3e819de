package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/ui/theme"
)

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a list of actions laid out in Columns columns, filled top to
// bottom. Up and down walk the list, left and right jump between columns,
// and the digits 1-9 activate an item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
	Columns  int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Columns: 1}
	m.Selected = m.step(-1, 1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step returns the first enabled index reached from i by repeatedly adding
// delta, or -1.
func (m Menu) step(i, delta int) int {
	for i += delta; i >= 0 && i < len(m.Items); i += delta {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) rows() int {
	cols := max(m.Columns, 1)
	return (len(m.Items) + cols - 1) / cols
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	move := 0
	switch k := key.String(); k {
	case "up", "k":
		move = -1
	case "down", "j":
		move = 1
	case "left", "h":
		move = -m.rows()
	case "right", "l":
		move = m.rows()
	case "enter":
		return m, m.activate(m.Selected)
	default:
		if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= min(len(m.Items), 9) {
			return m, m.activate(n - 1)
		}
	}
	if move != 0 {
		if next := m.step(m.Selected, move); next >= 0 {
			m.Selected = next
		}
	}
	return m, nil
}

func (m *Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return nil
	}
	m.Selected = i
	if m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// View is the plain text list used on short terminals.
func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			lines[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + item.Label)
		case i == m.Selected:
			lines[i] = theme.Selected.Render("  ▸ " + item.Label)
		default:
			lines[i] = theme.Unselected.Render("    " + item.Label)
		}
	}
	return strings.Join(lines, "\n")
}

// Grid renders the items as buttons of the given width in Columns columns.
func (m Menu) Grid(buttonWidth int) string {
	rows := m.rows()
	var cols []string
	for start := 0; start < len(m.Items); start += rows {
		end := min(start+rows, len(m.Items))
		buttons := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			state := ButtonNormal
			switch {
			case m.Items[i].Disabled:
				state = ButtonDisabled
			case i == m.Selected:
				state = ButtonSelected
			}
			buttons = append(buttons, Button(m.Items[i].Label, state, buttonWidth))
		}
		if len(cols) > 0 {
			cols = append(cols, "  ")
		}
		cols = append(cols, strings.Join(buttons, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
