package florafauna

import (
	"strings"
	"testing"

	"github.com/vovakirdan/florafauna/internal/config"
	"github.com/vovakirdan/florafauna/internal/core"
	"github.com/vovakirdan/florafauna/internal/ecosystem"
	"github.com/vovakirdan/florafauna/internal/registry"
)

func newTestGame(t *testing.T, scenario string, w, h int) *Game {
	t.Helper()
	g, err := New(scenario, config.DefaultEcosystemConfig())
	if err != nil {
		t.Fatalf("New(%q) failed: %v", scenario, err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 30, Seed: 42})
	return g
}

func press(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func TestScenariosRegistered(t *testing.T) {
	for _, id := range []string{"meadow", "drylands", "wolfpack", "sanctuary"} {
		if !registry.Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
		if _, err := registry.Configure(id, config.DefaultEcosystemConfig()); err != nil {
			t.Errorf("Configure(%q) failed: %v", id, err)
		}
	}
}

func TestScenariosFollowDifficulty(t *testing.T) {
	configure := func(id string, preset config.DifficultyPreset) config.EcosystemConfig {
		t.Helper()
		base := config.DefaultEcosystemConfig()
		config.ApplyEcosystemPreset(&base, preset)
		cfg, err := registry.Configure(id, base)
		if err != nil {
			t.Fatalf("Configure(%q, %s) failed: %v", id, preset, err)
		}
		return cfg
	}

	tests := []struct {
		scenario string
		preset   config.DifficultyPreset
		pick     func(config.EcosystemConfig) float64
		want     float64
	}{
		{"drylands", config.DifficultyNormal, func(c config.EcosystemConfig) float64 { return c.Events.Drought.Chance }, 0.15},
		{"drylands", config.DifficultyNormal, func(c config.EcosystemConfig) float64 { return c.Events.Drought.Loss }, 0.25},
		{"drylands", config.DifficultyNormal, func(c config.EcosystemConfig) float64 { return c.Growth.Rate }, 0.05},
		{"drylands", config.DifficultyHard, func(c config.EcosystemConfig) float64 { return c.Events.Drought.Chance }, 0.3},
		{"drylands", config.DifficultyHard, func(c config.EcosystemConfig) float64 { return c.Events.Drought.Loss }, 0.375},
		{"drylands", config.DifficultyEasy, func(c config.EcosystemConfig) float64 { return c.Events.Drought.Chance }, 0.075},
		{"wolfpack", config.DifficultyNormal, func(c config.EcosystemConfig) float64 { return c.Events.Migration.Chance }, 0.1},
		{"wolfpack", config.DifficultyHard, func(c config.EcosystemConfig) float64 { return c.Events.Migration.Chance }, 0.2},
		{"wolfpack", config.DifficultyEasy, func(c config.EcosystemConfig) float64 { return c.Events.Migration.Chance }, 0.05},
	}

	for _, tt := range tests {
		if got := tt.pick(configure(tt.scenario, tt.preset)); got != tt.want {
			t.Errorf("%s/%s = %v, want %v", tt.scenario, tt.preset, got, tt.want)
		}
	}

	wolves := configure("wolfpack", config.DifficultyHard).Events.Migration
	if wolves.MinBonus != 1 || wolves.MaxBonus != 3 {
		t.Errorf("wolfpack migration bonus = %d..%d, want 1..3", wolves.MinBonus, wolves.MaxBonus)
	}
}

func TestNewUnknownScenario(t *testing.T) {
	if _, err := New("volcano", config.DefaultEcosystemConfig()); err == nil {
		t.Error("New() should fail for unknown scenario")
	}
}

func TestNewDefaultScenario(t *testing.T) {
	g, err := New("", config.DefaultEcosystemConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if g.ID() != DefaultScenario {
		t.Errorf("ID() = %q, want %q", g.ID(), DefaultScenario)
	}
}

func TestStepPlaysOneTurn(t *testing.T) {
	g := newTestGame(t, "sanctuary", 80, 24)

	res := press(g, core.ActionSkip)

	want := ecosystem.State{Turn: 2, Plants: 40, Herbivores: 8, Predators: 3}
	if got := g.Snapshot().State; got != want {
		t.Errorf("state = %+v, want %+v", got, want)
	}
	if len(res.Messages) != 1 || res.Messages[0] != "You did nothing this turn." {
		t.Errorf("messages = %q", res.Messages)
	}

	lines := g.Journal().Lines()
	if len(lines) != 2 || lines[0] != WelcomeMessage {
		t.Errorf("journal = %q", lines)
	}
}

func TestStepWithoutActionOnlyAnimates(t *testing.T) {
	g := newTestGame(t, "meadow", 80, 24)
	before := g.Snapshot()

	g.Step(core.NewInputFrame())

	after := g.Snapshot()
	if after.State != before.State {
		t.Errorf("state changed without a turn action: %+v -> %+v", before.State, after.State)
	}
	if after.Tick != before.Tick+1 {
		t.Errorf("tick = %d, want %d", after.Tick, before.Tick+1)
	}
}

func TestGameEndsAndIgnoresInput(t *testing.T) {
	g := newTestGame(t, "sanctuary", 80, 24)

	for i := 0; i < 30; i++ {
		press(g, core.ActionSkip)
	}

	snap := g.Snapshot()
	if !snap.Ended || snap.Collapsed {
		t.Fatalf("after 30 turns: ended=%v collapsed=%v", snap.Ended, snap.Collapsed)
	}
	want := ecosystem.State{Turn: 31, Plants: 858}
	if snap.State != want {
		t.Errorf("final state = %+v, want %+v", snap.State, want)
	}
	if snap.Score != 350 {
		t.Errorf("score = %d, want 350", snap.Score)
	}
	if st := g.State(); !st.GameOver || st.Score != 350 {
		t.Errorf("State() = %+v", st)
	}

	logLen := g.Journal().Len()
	res := press(g, core.ActionPlant)
	if len(res.Messages) != 0 {
		t.Errorf("input after end produced messages: %q", res.Messages)
	}
	if g.Journal().Len() != logLen {
		t.Error("journal grew after the simulation ended")
	}
	if g.Snapshot().State != want {
		t.Error("state changed after the simulation ended")
	}
}

func TestGameDeterminism(t *testing.T) {
	actions := []core.Action{
		core.ActionPlant, core.ActionSkip, core.ActionHerbivore, core.ActionPredator,
	}

	run := func() (Snapshot, []string) {
		g := newTestGame(t, "wolfpack", 80, 24)
		for i := 0; i < 40; i++ {
			if i%3 == 0 {
				press(g, actions[(i/3)%len(actions)])
			} else {
				g.Step(core.NewInputFrame())
			}
		}
		return g.Snapshot(), g.Journal().Lines()
	}

	snap1, log1 := run()
	snap2, log2 := run()

	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if strings.Join(log1, "\n") != strings.Join(log2, "\n") {
		t.Error("journals differ for the same seed and input")
	}
}

func TestResizeKeepsSimulation(t *testing.T) {
	g := newTestGame(t, "sanctuary", 80, 24)
	press(g, core.ActionSkip)
	before := g.Snapshot()

	g.Resize(100, 30)
	g.Resize(30, 10)

	if g.Snapshot() != before {
		t.Error("resize must not change the simulation")
	}
	if !g.tooSmall {
		t.Error("30x10 should be too small")
	}

	press(g, core.ActionSkip)
	if g.Snapshot().State != before.State {
		t.Error("turns must be ignored while the window is too small")
	}
}

func TestDotCounts(t *testing.T) {
	tests := []struct {
		state                ecosystem.State
		plants, herbs, preds int
	}{
		{ecosystem.State{Plants: 50, Herbivores: 10, Predators: 3}, 25, 10, 3},
		{ecosystem.State{Plants: 858}, 50, 0, 0},
		{ecosystem.State{Plants: 1, Herbivores: 99, Predators: 40}, 0, 30, 15},
	}

	for _, tt := range tests {
		p, h, d := dotCounts(tt.state)
		if p != tt.plants || h != tt.herbs || d != tt.preds {
			t.Errorf("dotCounts(%+v) = %d,%d,%d, want %d,%d,%d",
				tt.state, p, h, d, tt.plants, tt.herbs, tt.preds)
		}
	}
}

func TestDotsMatchPopulations(t *testing.T) {
	g := newTestGame(t, "sanctuary", 80, 24)

	if len(g.field.plants) != 25 || len(g.field.herbivores) != 10 || len(g.field.predators) != 3 {
		t.Fatalf("initial dots = %d/%d/%d, want 25/10/3",
			len(g.field.plants), len(g.field.herbivores), len(g.field.predators))
	}

	for i := 0; i < 30; i++ {
		press(g, core.ActionSkip)
	}
	if len(g.field.plants) != 50 || len(g.field.herbivores) != 0 || len(g.field.predators) != 0 {
		t.Errorf("final dots = %d/%d/%d, want 50/0/0",
			len(g.field.plants), len(g.field.herbivores), len(g.field.predators))
	}
}

func TestDotsStayInField(t *testing.T) {
	g := newTestGame(t, "meadow", 80, 24)
	press(g, core.ActionHerbivore)

	for i := 0; i < 500; i++ {
		g.Step(core.NewInputFrame())
	}

	w, h := float64(g.field.w), float64(g.field.h)
	for _, dots := range [][]dot{g.field.plants, g.field.herbivores, g.field.predators} {
		for _, d := range dots {
			if d.X < 0 || d.X > w-1 || d.Y < 0 || d.Y > h-1 {
				t.Fatalf("dot %+v outside %vx%v field", d, w, h)
			}
		}
	}
}

func TestBarHeight(t *testing.T) {
	tests := []struct {
		value, max, height, want int
	}{
		{0, 200, 10, 0},
		{100, 200, 10, 5},
		{200, 200, 10, 10},
		{858, 200, 10, 10},
		{3, 20, 10, 1},
		{5, 0, 10, 0},
	}

	for _, tt := range tests {
		if got := barHeight(tt.value, tt.max, tt.height); got != tt.want {
			t.Errorf("barHeight(%d, %d, %d) = %d, want %d", tt.value, tt.max, tt.height, got, tt.want)
		}
	}
}

func TestRenderStatus(t *testing.T) {
	g := newTestGame(t, "meadow", 80, 24)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	rows := strings.Split(screen.String(), "\n")
	if !strings.Contains(rows[1], "Turn 1/30  Balance 95%") {
		t.Errorf("status row = %q", rows[1])
	}
	for _, want := range []string{WelcomeMessage, " Log ", " Populations "} {
		if !strings.Contains(screen.String(), want) {
			t.Errorf("screen missing %q", want)
		}
	}
	if screen.GetCell(1, 0).Color != core.ColorBrightGreen {
		t.Error("title should be bright green")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, "meadow", 30, 10)
	screen := core.NewScreen(30, 10)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small window should show a resize hint")
	}
}

func TestRenderEndOverlay(t *testing.T) {
	g := newTestGame(t, "sanctuary", 80, 24)
	for i := 0; i < 30; i++ {
		press(g, core.ActionSkip)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SIMULATION ENDED", "Score: 350", "Press R to restart", "[R] Restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("end screen missing %q", want)
		}
	}
}

func TestJournal(t *testing.T) {
	j := NewJournal()
	j.Append("a", "b")
	j.Append("c")

	if j.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", j.Len())
	}
	if got := strings.Join(j.Tail(2), ","); got != "b,c" {
		t.Errorf("Tail(2) = %q, want b,c", got)
	}
	if got := strings.Join(j.Tail(10), ","); got != "a,b,c" {
		t.Errorf("Tail(10) = %q, want a,b,c", got)
	}
	if j.Tail(0) != nil {
		t.Error("Tail(0) should be nil")
	}

	lines := j.Lines()
	lines[0] = "changed"
	if j.Lines()[0] != "a" {
		t.Error("Lines() must return a copy")
	}
}
