package ecosystem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAction is returned for actions outside the four player interventions.
var ErrInvalidAction = errors.New("ecosystem: invalid action")

// Action is a player intervention applied at the start of a turn.
type Action int

const (
	ActionPlantSeeds Action = iota + 1
	ActionAddHerbivore
	ActionAddPredator
	ActionSkip
)

// Actions lists every valid action in menu order.
var Actions = []Action{ActionPlantSeeds, ActionAddHerbivore, ActionAddPredator, ActionSkip}

// Valid reports whether a is one of the four player interventions.
func (a Action) Valid() bool {
	return a >= ActionPlantSeeds && a <= ActionSkip
}

// String returns the short name used in scripts and the CLI.
func (a Action) String() string {
	switch a {
	case ActionPlantSeeds:
		return "plant"
	case ActionAddHerbivore:
		return "herbivore"
	case ActionAddPredator:
		return "predator"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseAction converts a user-supplied name to an Action.
// Accepts the short names plus a few aliases ("seeds", "herb", "pred", "wait").
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plant", "seeds", "plantseeds":
		return ActionPlantSeeds, nil
	case "herbivore", "herb", "addherbivore":
		return ActionAddHerbivore, nil
	case "predator", "pred", "addpredator":
		return ActionAddPredator, nil
	case "skip", "wait", "none":
		return ActionSkip, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}
