package circle

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/pitch"
	"github.com/abhisek/fretwise/internal/screen"
	"github.com/abhisek/fretwise/internal/theory"
	"github.com/abhisek/fretwise/internal/ui/diagram"
	"github.com/abhisek/fretwise/internal/ui/layout"
	"github.com/abhisek/fretwise/internal/ui/theme"
)

// CircleScreen draws the circle of fifths and details the selected key.
type CircleScreen struct {
	dir      theory.Direction
	selected int
}

var _ screen.Screen = (*CircleScreen)(nil)
var _ screen.KeyHintProvider = (*CircleScreen)(nil)
var _ screen.StatusProvider = (*CircleScreen)(nil)

func New() *CircleScreen { return &CircleScreen{} }

func (c *CircleScreen) Init() tea.Cmd { return nil }

func (c *CircleScreen) Title() string { return "Circle of Fifths" }

func (c *CircleScreen) Status() string { return c.dir.String() }

func (c *CircleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Fifths/Fourths"},
		{Key: "←→", Description: "Key"},
		{Key: "Esc", Description: "Back"},
	}
}

// Direction returns the walking direction.
func (c *CircleScreen) Direction() theory.Direction { return c.dir }

// Selected returns the highlighted key as printed on the circle.
func (c *CircleScreen) Selected() string {
	return theory.Circle(c.dir)[c.selected]
}

func (c *CircleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "tab":
		// Keep the same key selected; its position mirrors across the top.
		c.dir = 1 - c.dir
		c.selected = (12 - c.selected) % 12
	case "right", "l":
		c.selected = (c.selected + 1) % 12
	case "left", "h":
		c.selected = (c.selected + 11) % 12
	}
	return c, nil
}

// keyDetails describes the signature and relative minor of a key printed
// on the circle, e.g. "Eb" or "F#/Gb".
func keyDetails(key string) []string {
	var lines []string
	spellings := strings.Split(key, "/")
	for _, s := range spellings {
		ks, err := theory.KeySignatureOf(s)
		if err != nil {
			continue
		}
		if len(ks.Accidentals) == 0 {
			lines = append(lines, ks.Key+" major: no sharps or flats")
		} else {
			lines = append(lines, ks.Key+" major: "+strings.Join(ks.Accidentals, " "))
		}
		break
	}
	if c, err := pitch.Parse(spellings[0]); err == nil {
		lines = append(lines, "relative minor: "+c.Transpose(9).Display()+" minor")
	}
	return lines
}

func (c *CircleScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, layout.Centered(diagram.Circle(c.dir, c.selected, diagram.Styled), width))

	key := c.Selected()
	detail := []string{theme.Title.Render(key + " major")}
	for _, l := range keyDetails(key) {
		detail = append(detail, theme.Body.Render(l))
	}
	sections = append(sections, layout.Centered(strings.Join(detail, "\n"), width))
	return strings.Join(sections, "\n\n")
}
