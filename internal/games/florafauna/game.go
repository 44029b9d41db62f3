// Package florafauna adapts the ecosystem simulator to the terminal platform:
// it turns key actions into simulation turns, keeps the message journal and
// draws populations, bars and the log onto a core.Screen.
package florafauna

import (
	"math/rand"

	"github.com/vovakirdan/florafauna/internal/config"
	"github.com/vovakirdan/florafauna/internal/core"
	"github.com/vovakirdan/florafauna/internal/ecosystem"
	"github.com/vovakirdan/florafauna/internal/registry"
)

// WelcomeMessage opens every journal.
const WelcomeMessage = "Welcome to Flora & Fauna! Keep the food chain in balance."

// Game is one playable simulation of a registered scenario.
type Game struct {
	id    string
	title string
	cfg   config.EcosystemConfig

	sim     *ecosystem.Simulator
	journal *Journal
	field   field
	fx      *rand.Rand // animation only, never fed to the simulator
	tick    uint64

	lastEvent ecosystem.EventKind

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given scenario on top of a loaded configuration.
// An empty scenario ID selects DefaultScenario.
func New(scenarioID string, base config.EcosystemConfig) (*Game, error) {
	if scenarioID == "" {
		scenarioID = DefaultScenario
	}
	sc, err := registry.Get(scenarioID)
	if err != nil {
		return nil, err
	}
	cfg, err := registry.Configure(scenarioID, base)
	if err != nil {
		return nil, err
	}

	return &Game{
		id:    sc.ID,
		title: sc.Title,
		cfg:   cfg,
	}, nil
}

// ID returns the scenario identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the effective configuration after the scenario was applied.
func (g *Game) Config() config.EcosystemConfig {
	return g.cfg
}

// Reset starts a fresh simulation seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.sim = ecosystem.New(g.cfg.Rules(), rand.New(rand.NewSource(cfg.Seed)))
	g.fx = rand.New(rand.NewSource(cfg.Seed ^ 0x5eed))
	g.journal = NewJournal()
	g.journal.Append(WelcomeMessage)
	g.tick = 0
	g.lastEvent = ecosystem.EventNone

	g.field = field{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.field.sync(g.sim.State(), g.fx)
}

// Resize adapts the layout to a new terminal size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < g.minHeight()

	inner := g.layout().fieldInner()
	g.field.resize(inner.W, inner.H)
}

// Step advances one animation tick and plays at most one turn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var messages []string
	if action, ok := turnAction(in.Turn()); ok && !g.tooSmall && !g.sim.Ended() {
		res, err := g.sim.ApplyTurn(action)
		if err == nil && res.Applied {
			messages = res.Messages
			g.journal.Append(res.Messages...)
			g.lastEvent = res.Event
			g.field.sync(res.State, g.fx)
		}
	}

	if !g.tooSmall {
		g.field.animate()
	}

	return core.StepResult{State: g.State(), Messages: messages}
}

// turnAction maps a key action onto a simulator action.
func turnAction(a core.Action) (ecosystem.Action, bool) {
	switch a {
	case core.ActionPlant:
		return ecosystem.ActionPlantSeeds, true
	case core.ActionHerbivore:
		return ecosystem.ActionAddHerbivore, true
	case core.ActionPredator:
		return ecosystem.ActionAddPredator, true
	case core.ActionSkip:
		return ecosystem.ActionSkip, true
	default:
		return 0, false
	}
}

// State returns the platform view of the game. The score is only known once
// the simulation has ended.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	score := 0
	if sum := g.sim.Summary(); sum != nil {
		score = sum.Score()
	}
	return core.GameState{
		Turn:     st.Turn,
		Score:    score,
		GameOver: g.sim.Ended(),
	}
}

// Summary returns the end-of-run summary, or nil while running.
func (g *Game) Summary() *ecosystem.Summary {
	return g.sim.Summary()
}

// Journal returns the message log.
func (g *Game) Journal() *Journal {
	return g.journal
}
