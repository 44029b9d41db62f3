package florafauna

import "github.com/vovakirdan/florafauna/internal/ecosystem"

// Snapshot captures the simulation side of the game for determinism tests.
// Dot positions are cosmetic and left out.
type Snapshot struct {
	Tick      uint64
	Scenario  string
	State     ecosystem.State
	Balance   int
	LastEvent ecosystem.EventKind
	Ended     bool
	Collapsed bool
	Score     int
	LogLen    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.sim.State()
	snap := Snapshot{
		Tick:      g.tick,
		Scenario:  g.id,
		State:     st,
		Balance:   ecosystem.Balance(st),
		LastEvent: g.lastEvent,
		Ended:     g.sim.Ended(),
		LogLen:    g.journal.Len(),
	}
	if sum := g.sim.Summary(); sum != nil {
		snap.Collapsed = sum.Collapsed
		snap.Score = sum.Score()
	}
	return snap
}
