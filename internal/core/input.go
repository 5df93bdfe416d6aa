package core

// Action is a player intent. Keys are bound to actions by the platform;
// games only ever see actions.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionPause
	ActionRestart // reload the current map
	ActionScores  // open the run history
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	"none", "left", "right", "up", "down",
	"fire", "pause", "restart", "scores", "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions fed to one game step.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set adds a to the frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a is in the frame. The zero frame is empty.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame in place.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns a frame with its own copy of the actions.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for a, on := range f.Actions {
		c.Actions[a] = on
	}
	return c
}
