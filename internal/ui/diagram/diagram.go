// Package diagram draws the instrument views shared by the TUI screens and
// the CLI: a fretboard grid, a piano keyboard and the circle of fifths.
// Every renderer has a plain mode that emits no escape sequences.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// Style selects colored or plain output.
type Style int

const (
	Styled Style = iota
	Plain
)

func (s Style) render(st lipgloss.Style, text string) string {
	if s == Plain {
		return text
	}
	return st.Render(text)
}

const cellWidth = 4

// Fretboard draws one line per string (string 1 on top) with fret numbers
// above and inlay markers below. Cells outside the filter are dotted out.
func Fretboard(fb theory.Fretboard, f theory.Filter, style Style) string {
	grid := fb.Grid(f)
	labelWidth := 0
	for i := range fb.Tuning {
		labelWidth = max(labelWidth, len(fb.StringLabel(i)))
	}
	pad := strings.Repeat(" ", labelWidth+1)

	var b strings.Builder

	b.WriteString(pad)
	for fret := 0; fret <= fb.Frets; fret++ {
		b.WriteString(center(fmt.Sprint(fret), cellWidth))
		if fret == 0 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	for i, row := range grid {
		label := fmt.Sprintf("%-*s ", labelWidth, fb.StringLabel(i))
		b.WriteString(style.render(lipgloss.NewStyle().Foreground(theme.TextDim), label))
		for _, cell := range row {
			b.WriteString(fretCell(cell, f, style))
			if cell.Fret == 0 {
				b.WriteString("‖")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(pad)
	for fret := 0; fret <= fb.Frets; fret++ {
		mark := ""
		switch {
		case theory.IsDoubleDot(fret):
			mark = "••"
		case theory.IsDotFret(fret):
			mark = "•"
		}
		b.WriteString(center(mark, cellWidth))
		if fret == 0 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func fretCell(c theory.Cell, f theory.Filter, style Style) string {
	if c.Dimmed {
		return style.render(theme.MutedNote, center("·", cellWidth-1))
	}
	text := center(c.Note, cellWidth-1)
	switch {
	case c.Highlight && f.Mode == theory.FilterScale && c.Note == f.Root:
		if style == Plain {
			text = center("["+c.Note+"]", cellWidth-1)
		}
		return style.render(theme.RootNote, text)
	case c.Highlight:
		return style.render(theme.ActiveNote, text)
	}
	return style.render(lipgloss.NewStyle().Foreground(theme.Text), text)
}

// center pads s to width, leaning left when the padding is odd.
func center(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// KeyboardOptions controls the piano drawing.
type KeyboardOptions struct {
	// Pressed MIDI notes are highlighted.
	Pressed map[int]bool
	// Marked MIDI notes (e.g. chord tones) are shown in the active color.
	Marked map[int]bool
	// Bindings maps a MIDI note to the computer key that plays it.
	Bindings map[int]string
}

// Keyboard draws black keys on the first line, white keys on the second,
// and computer key bindings on the third when there are any.
func Keyboard(kb theory.Keyboard, opts KeyboardOptions, style Style) string {
	keys := kb.Keys()
	whites := kb.Octaves * 7

	blackAt := make(map[int]theory.Key)
	var whiteKeys []theory.Key
	for _, k := range keys {
		if k.Black {
			blackAt[k.Column] = k
		} else {
			whiteKeys = append(whiteKeys, k)
		}
	}

	keyStyle := func(k theory.Key, base lipgloss.Style) lipgloss.Style {
		switch {
		case opts.Pressed[k.MIDI]:
			return theme.PressedKey
		case opts.Marked[k.MIDI]:
			return theme.ActiveNote
		}
		return base
	}

	var top, bottom, hints strings.Builder
	top.WriteString(" ")
	hints.WriteString(" ")
	for col := 0; col < whites; col++ {
		top.WriteString("  ")
		if k, ok := blackAt[col]; ok {
			text := "▐▌"
			if style == Plain {
				text = "##"
				if opts.Pressed[k.MIDI] || opts.Marked[k.MIDI] {
					text = "**"
				}
			}
			if hint := opts.Bindings[k.MIDI]; hint != "" {
				text = center(hint, 2)
			}
			top.WriteString(style.render(keyStyle(k, theme.BlackKey), text))
		} else {
			top.WriteString("  ")
		}
	}

	for _, k := range whiteKeys {
		label := k.Class.Name()
		if k.Class == 0 {
			label = k.Label()
		}
		text := center(label, cellWidth-1)
		if style == Plain && (opts.Pressed[k.MIDI] || opts.Marked[k.MIDI]) {
			text = center("*"+label, cellWidth-1)
		}
		bottom.WriteString("│")
		bottom.WriteString(style.render(keyStyle(k, theme.WhiteKey), text))

		hint := opts.Bindings[k.MIDI]
		hints.WriteString(style.render(theme.Hint, center(hint, cellWidth)))
	}
	bottom.WriteString("│")

	out := strings.TrimRight(top.String(), " ") + "\n" + bottom.String()
	if len(opts.Bindings) > 0 {
		out += "\n" + strings.TrimRight(hints.String(), " ")
	}
	return out
}

// Circle lays the twelve keys out on a ring, starting at twelve o'clock
// and going clockwise. selected, when in range, is highlighted.
func Circle(d theory.Direction, selected int, style Style) string {
	keys := theory.Circle(d)
	const (
		rows   = 13
		cols   = 41
		radius = 6.0
	)
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	cy, cx := rows/2, cols/2
	for i, k := range keys {
		angle := float64(i) * 2 * math.Pi / float64(len(keys))
		y := cy - int(math.Round(radius*math.Cos(angle)))
		x := cx + int(math.Round(radius*2.8*math.Sin(angle)))

		label := k
		st := lipgloss.NewStyle().Foreground(theme.Text)
		if i == selected {
			st = theme.RootNote
			if style == Plain {
				label = "[" + k + "]"
			}
		}
		start := x - len([]rune(label))/2
		// The first cell of the label carries the whole styled string; the
		// rest are blanked so the row keeps its width.
		runes := []rune(label)
		for j := range runes {
			if start+j >= 0 && start+j < cols {
				grid[y][start+j] = ""
			}
		}
		if start >= 0 && start < cols {
			grid[y][start] = style.render(st, label)
		}
	}

	centerText := "fifths ↻"
	if d == theory.Down {
		centerText = "fourths ↺"
	}
	ct := []rune(centerText)
	for j := range ct {
		grid[cy][cx-len(ct)/2+j] = ""
	}
	grid[cy][cx-len(ct)/2] = style.render(theme.Hint, centerText)

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = strings.TrimRight(strings.Join(grid[r], ""), " ")
	}
	return strings.Join(lines, "\n")
}
