// Package ecosystem implements the Flora & Fauna population rules: three
// interdependent populations (plants, herbivores, predators) updated once per
// turn by a fixed pipeline. It has no rendering or I/O dependencies; callers
// read the returned state and messages and draw them however they like.
package ecosystem

import (
	"fmt"
	"math"
)

// ClosingMessage ends every finished simulation summary.
const ClosingMessage = "Thanks for playing Flora & Fauna!"

// State is a snapshot of the simulation counters.
type State struct {
	Turn       int
	Plants     int
	Herbivores int
	Predators  int
}

// Extinct reports whether all three populations are zero.
func (s State) Extinct() bool {
	return s.Plants == 0 && s.Herbivores == 0 && s.Predators == 0
}

// EventKind identifies the random event drawn during a turn.
type EventKind int

const (
	EventNone EventKind = iota
	EventDrought
	EventDisease
	EventMigration
)

// String returns a human-readable name for the event.
func (e EventKind) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventDrought:
		return "drought"
	case EventDisease:
		return "disease"
	case EventMigration:
		return "migration"
	default:
		return "unknown"
	}
}

// Summary describes a finished simulation.
type Summary struct {
	Final     State
	Collapsed bool
	Message   string
}

// TurnsSurvived returns the number of turns that were played.
func (s Summary) TurnsSurvived() int {
	return s.Final.Turn - 1
}

// Score rates a finished run: ten points per survived turn plus the final
// balance percentage. A collapsed ecosystem earns no balance points.
func (s Summary) Score() int {
	score := s.TurnsSurvived() * 10
	if !s.Collapsed {
		score += Balance(s.Final)
	}
	return score
}

// Lines returns the end-of-game report as log lines.
func (s Summary) Lines() []string {
	return []string{
		"Simulation ended.",
		fmt.Sprintf("Plants: %d", s.Final.Plants),
		fmt.Sprintf("Herbivores: %d", s.Final.Herbivores),
		fmt.Sprintf("Predators: %d", s.Final.Predators),
		s.Message,
	}
}

// TurnResult is returned by ApplyTurn.
type TurnResult struct {
	State    State
	Messages []string
	Event    EventKind

	// Applied is false when the call was ignored because the simulation had ended.
	Applied bool

	Terminal        bool
	ActionsDisabled bool
	Summary         *Summary // set once Terminal is true
}

// Simulator owns the population state and applies turns to it.
// It is not safe for concurrent use.
type Simulator struct {
	rules   Rules
	src     Source
	state   State
	ended   bool
	summary *Summary

	messages []string
	event    EventKind
}

// New creates a simulator at the rules' initial state.
func New(rules Rules, src Source) *Simulator {
	return NewWithState(rules, rules.InitialState(), src)
}

// NewWithState creates a simulator starting from an arbitrary state.
// Negative populations are clamped and a turn below 1 becomes 1.
func NewWithState(rules Rules, state State, src Source) *Simulator {
	if state.Turn < 1 {
		state.Turn = 1
	}
	s := &Simulator{
		rules: rules,
		src:   src,
		state: state,
	}
	s.clamp()
	if s.state.Turn > s.rules.MaxTurns {
		s.finish(false)
	}
	return s
}

// State returns the current state.
func (s *Simulator) State() State {
	return s.state
}

// Rules returns the constants the simulator was built with.
func (s *Simulator) Rules() Rules {
	return s.rules
}

// Ended reports whether the simulation reached its terminal state.
func (s *Simulator) Ended() bool {
	return s.ended
}

// Summary returns the end-of-game summary, or nil while the game is running.
func (s *Simulator) Summary() *Summary {
	return s.summary
}

// ApplyTurn runs one full turn for the given player action.
// Only an unknown action returns an error; after the simulation has ended the
// call is a no-op reported through Applied=false.
func (s *Simulator) ApplyTurn(action Action) (TurnResult, error) {
	if !action.Valid() {
		return TurnResult{}, fmt.Errorf("%w: %d", ErrInvalidAction, int(action))
	}
	if s.ended {
		return s.result(false), nil
	}

	s.messages = nil
	s.event = EventNone

	s.intervene(action)
	s.growPlants()
	s.herbivoresEat()
	s.predatorsEat()
	s.reproduce()
	s.randomEvent()
	s.clamp()
	s.state.Turn++

	switch {
	case s.state.Extinct():
		s.log("Ecosystem collapsed!")
		s.finish(true)
	case s.state.Turn > s.rules.MaxTurns:
		s.finish(false)
	}

	return s.result(true), nil
}

func (s *Simulator) result(applied bool) TurnResult {
	r := TurnResult{
		State:           s.state,
		Applied:         applied,
		Terminal:        s.ended,
		ActionsDisabled: s.ended,
	}
	if applied {
		r.Messages = s.messages
		r.Event = s.event
	}
	if s.summary != nil {
		sum := *s.summary
		r.Summary = &sum
	}
	return r
}

func (s *Simulator) finish(collapsed bool) {
	s.ended = true
	s.summary = &Summary{
		Final:     s.state,
		Collapsed: collapsed,
		Message:   ClosingMessage,
	}
	s.messages = append(s.messages, s.summary.Lines()...)
}

func (s *Simulator) log(format string, args ...any) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
}

// intervene applies the player's action.
func (s *Simulator) intervene(action Action) {
	switch action {
	case ActionPlantSeeds:
		s.state.Plants += s.rules.SeedCount
		bonus := 0
		if s.rules.SeedsPerBonusHerbivore > 0 {
			bonus = s.rules.SeedCount / s.rules.SeedsPerBonusHerbivore
		}
		if bonus > 0 {
			s.state.Herbivores += bonus
			s.log("You planted %d seeds! Herbivores +%d thanks to extra food.", s.rules.SeedCount, bonus)
		} else {
			s.log("You planted %d seeds!", s.rules.SeedCount)
		}
	case ActionAddHerbivore:
		s.state.Herbivores += s.rules.HerbivoresAdded
		s.log("You added %s!", plural(s.rules.HerbivoresAdded, "herbivore"))
	case ActionAddPredator:
		s.state.Predators += s.rules.PredatorsAdded
		s.log("You added %s!", plural(s.rules.PredatorsAdded, "predator"))
	case ActionSkip:
		s.log("You did nothing this turn.")
	}
}

// growPlants adds percentage growth plus a fixed base amount.
func (s *Simulator) growPlants() {
	s.state.Plants += int(float64(s.state.Plants)*s.rules.PlantGrowthRate) + s.rules.PlantGrowthBase
	if s.state.Plants < 0 {
		s.state.Plants = 0
	}
}

func (s *Simulator) herbivoresEat() {
	s.state.Plants, s.state.Herbivores = consume(s.state.Plants, s.state.Herbivores, s.rules.HerbivoreNeed)
}

func (s *Simulator) predatorsEat() {
	s.state.Herbivores, s.state.Predators = consume(s.state.Herbivores, s.state.Predators, s.rules.PredatorNeed)
}

// consume feeds eaters from food. When food runs short, eaters starve in
// proportion to the shortfall, rounded up.
func consume(food, eaters, need int) (int, int) {
	required := eaters * need
	if food >= required {
		return food - required, eaters
	}
	deficit := required - food
	starved := deficit
	if need > 0 {
		starved = (deficit + need - 1) / need
	}
	return 0, max(eaters-starved, 0)
}

func (s *Simulator) reproduce() {
	s.state.Herbivores += int(float64(s.state.Herbivores) * s.rules.HerbivoreReproduction)
	s.state.Predators += int(float64(s.state.Predators) * s.rules.PredatorReproduction)
}

// randomEvent draws once and checks the event bands in fixed order.
func (s *Simulator) randomEvent() {
	roll := s.src.Float64()

	drought := s.rules.DroughtChance
	disease := drought + s.rules.DiseaseChance
	migration := disease + s.rules.MigrationChance

	switch {
	case roll < drought:
		loss := int(float64(s.state.Plants) * s.rules.DroughtLoss)
		s.state.Plants -= loss
		s.event = EventDrought
		s.log("Drought! Plants -%d", loss)
	case roll < disease:
		loss := int(float64(s.state.Herbivores) * s.rules.DiseaseLoss)
		s.state.Herbivores -= loss
		s.event = EventDisease
		s.log("Disease! Herbivores -%d", loss)
	case roll < migration:
		bonus := s.migrationBonus()
		s.state.Predators += bonus
		s.event = EventMigration
		s.log("Predator migration! Predators +%d", bonus)
	}
}

// migrationBonus draws a bonus in [MigrationMin, MigrationMax].
func (s *Simulator) migrationBonus() int {
	lo, hi := s.rules.MigrationMin, s.rules.MigrationMax
	if hi < lo {
		hi = lo
	}
	bonus := lo + int(math.Floor(s.src.Float64()*float64(hi-lo+1)))
	return min(bonus, hi)
}

func (s *Simulator) clamp() {
	s.state.Plants = max(s.state.Plants, 0)
	s.state.Herbivores = max(s.state.Herbivores, 0)
	s.state.Predators = max(s.state.Predators, 0)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
