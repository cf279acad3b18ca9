package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - jump, flap with wings
	ActionSlide             // S, Down - slide pose while held
	ActionPause             // P, Escape - pause/unpause game
	ActionDifficulty        // H - toggle normal/hard on the title screen
	ActionRestart           // R - restart after game over
	ActionSpecial           // F, left click - spend a special charge
	ActionConfirm           // Enter - start a run
	ActionBack              // B - back to menu
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSlide:
		return "Slide"
	case ActionPause:
		return "Pause"
	case ActionDifficulty:
		return "Difficulty"
	case ActionRestart:
		return "Restart"
	case ActionSpecial:
		return "Special"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Pressed actions fire once (key-down), held actions persist while the key
// is down, released actions fire once on key-up.
type InputFrame struct {
	Actions  map[Action]bool
	Holding  map[Action]bool
	Releases map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Holding:  make(map[Action]bool),
		Releases: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetHeld marks an action as held down during this frame.
func (f *InputFrame) SetHeld(a Action) {
	if f.Holding == nil {
		f.Holding = make(map[Action]bool)
	}
	f.Holding[a] = true
}

// Held returns true if the action is held down.
func (f InputFrame) Held(a Action) bool {
	return f.Holding[a]
}

// SetReleased marks an action as released during this frame.
func (f *InputFrame) SetReleased(a Action) {
	if f.Releases == nil {
		f.Releases = make(map[Action]bool)
	}
	f.Releases[a] = true
}

// Released returns true if the action was released this frame.
func (f InputFrame) Released(a Action) bool {
	return f.Releases[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Holding)
	clear(f.Releases)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	for k, v := range f.Holding {
		c.Holding[k] = v
	}
	for k, v := range f.Releases {
		c.Releases[k] = v
	}
	return c
}
