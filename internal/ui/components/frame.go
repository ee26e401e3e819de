package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/ui/theme"
)

const (
	maxContentWidth = 60
	minContentWidth = 20
)

// ContentWidth is the inner width shared by every card on a screen, so the
// boxes line up. The frame border and padding take six columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// CabinetFrame draws the double border around a whole screen and centers
// content inside it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Align(lipgloss.Center).
	Padding(1, 2)

// ArcadeCard boxes content at content width cw.
func ArcadeCard(content string, cw int) string {
	return cardStyle.Width(cw - 2).Render(content)
}

// TitledCard is ArcadeCard with a heading above the content.
func TitledCard(title, content string, cw int) string {
	return ArcadeCard(theme.Title.Render(title)+"\n\n"+content, cw)
}

// ButtonState picks the look of a button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

var (
	buttonBase = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Padding(0, 1)

	buttonSelected = buttonBase.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)

	buttonDisabled = buttonBase.Foreground(theme.TextDim)
)

// Button renders a bordered menu button width columns wide.
func Button(label string, state ButtonState, width int) string {
	switch state {
	case ButtonSelected:
		return buttonSelected.Width(width).Render("▸ " + label)
	case ButtonDisabled:
		return buttonDisabled.Width(width).Render(label)
	}
	return buttonBase.Width(width).Render(label)
}

// ArcadeButton is Button for the common selected/unselected case.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return Button(label, ButtonSelected, width)
	}
	return Button(label, ButtonNormal, width)
}
