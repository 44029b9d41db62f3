package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionPlant            // 1, P - plant seeds
	ActionHerbivore        // 2, H - add herbivores
	ActionPredator         // 3, X - add a predator
	ActionSkip             // 4, S, Space - do nothing this turn
	ActionRestart          // R - start a new run after the end
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlant:
		return "Plant"
	case ActionHerbivore:
		return "Herbivore"
	case ActionPredator:
		return "Predator"
	case ActionSkip:
		return "Skip"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsTurn reports whether the action plays a simulation turn.
func (a Action) IsTurn() bool {
	return a >= ActionPlant && a <= ActionSkip
}

// InputFrame collects the actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Turn returns the first turn action in the frame, checked in key order, or ActionNone.
func (f InputFrame) Turn() Action {
	for a := ActionPlant; a.IsTurn(); a++ {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
