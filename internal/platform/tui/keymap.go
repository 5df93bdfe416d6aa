package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-centipede/internal/core"
)

// holdWindow is how long a direction stays active after its last key event.
// Terminals send no key releases, only auto-repeated presses, so a held key
// is one that was seen recently.
const holdWindow = 200 * time.Millisecond

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Pause, k.Restart, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Pause, k.Restart},
		{k.Scores, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Controls turns key presses into per-tick input frames.
// Directions are held for holdWindow after each press; fire, pause and
// restart trigger once per press.
type Controls struct {
	keys    KeyMap
	held    map[core.Action]time.Time
	pressed core.InputFrame
}

// NewControls creates controls for the given bindings.
func NewControls(keys KeyMap) *Controls {
	return &Controls{
		keys:    keys,
		held:    make(map[core.Action]time.Time),
		pressed: core.NewInputFrame(),
	}
}

// Press records a key event seen at now. It returns the matched action,
// or ActionNone for keys the game does not use.
func (c *Controls) Press(msg tea.KeyMsg, now time.Time) core.Action {
	switch {
	case key.Matches(msg, c.keys.Left):
		c.hold(core.ActionLeft, core.ActionRight, now)
		return core.ActionLeft
	case key.Matches(msg, c.keys.Right):
		c.hold(core.ActionRight, core.ActionLeft, now)
		return core.ActionRight
	case key.Matches(msg, c.keys.Up):
		c.hold(core.ActionUp, core.ActionDown, now)
		return core.ActionUp
	case key.Matches(msg, c.keys.Down):
		c.hold(core.ActionDown, core.ActionUp, now)
		return core.ActionDown
	case key.Matches(msg, c.keys.Fire):
		c.pressed.Set(core.ActionFire)
		return core.ActionFire
	case key.Matches(msg, c.keys.Pause):
		c.pressed.Set(core.ActionPause)
		return core.ActionPause
	case key.Matches(msg, c.keys.Restart):
		c.pressed.Set(core.ActionRestart)
		return core.ActionRestart
	case key.Matches(msg, c.keys.Scores):
		return core.ActionScores
	case key.Matches(msg, c.keys.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// hold starts a direction and cancels its opposite.
func (c *Controls) hold(a, opposite core.Action, now time.Time) {
	c.held[a] = now
	delete(c.held, opposite)
}

// Frame returns the input for the tick at now and consumes one-shot presses.
func (c *Controls) Frame(now time.Time) core.InputFrame {
	f := c.pressed.Clone()
	c.pressed.Clear()
	for a, at := range c.held {
		if now.Sub(at) <= holdWindow {
			f.Set(a)
		} else {
			delete(c.held, a)
		}
	}
	return f
}

// Release drops every held direction and pending press.
func (c *Controls) Release() {
	c.pressed.Clear()
	for a := range c.held {
		delete(c.held, a)
	}
}
