// Package router keeps the stack of screens between the home menu and
// whatever tool the learner has drilled into.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fretwise/internal/screen"
)

type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg returns to the previous screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the top screen, e.g. a finished quiz for its
	// summary, so Esc from the summary goes back to the mode menu.
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router is a stack of screens. The bottom screen is never removed.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen. It is a no-op on the root.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) < 2 {
		return nil
	}
	top := r.top()
	r.stack = r.stack[:len(r.stack)-1]
	return release(top)
}

// Replace closes the top screen and puts s in its place.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	old := r.top()
	r.stack[len(r.stack)-1] = s
	return tea.Batch(release(old), s.Init())
}

// Unwind closes every screen above the root, top first.
func (r *Router) Unwind() tea.Cmd {
	var cmds []tea.Cmd
	for len(r.stack) > 1 {
		cmds = append(cmds, r.Pop())
	}
	return tea.Batch(cmds...)
}

func release(s screen.Screen) tea.Cmd {
	if c, ok := s.(screen.Closer); ok {
		return c.Close()
	}
	return nil
}

func (r *Router) top() screen.Screen { return r.stack[len(r.stack)-1] }

// Active is the screen receiving input.
func (r *Router) Active() screen.Screen { return r.top() }

func (r *Router) Depth() int { return len(r.stack) }

// Trail lists screen titles from the root up, for the header breadcrumb.
func (r *Router) Trail() []string {
	out := make([]string, len(r.stack))
	for i, s := range r.stack {
		out[i] = s.Title()
	}
	return out
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}
	next, cmd := r.top().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.top().View(width, height)
}

// PushCmd opens s from inside a screen's Update.
func PushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// PopCmd goes back one screen.
func PopCmd() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// ReplaceCmd swaps the calling screen for s.
func ReplaceCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}
