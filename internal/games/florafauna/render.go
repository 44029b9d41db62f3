package florafauna

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/florafauna/internal/core"
	"github.com/vovakirdan/florafauna/internal/ecosystem"
)

const (
	minWidth      = 60
	minBodyHeight = 7
	headerHeight  = 2
	barPanelWidth = 26
	barWidth      = 4
	barGap        = 4
)

const (
	plantRune     = '*'
	herbivoreRune = 'o'
	predatorRune  = '@'
	barRune       = '█'
)

// layout splits the screen into header, field, bars, log and controls.
type layout struct {
	field    core.Rect
	bars     core.Rect
	log      core.Rect
	controls int
}

func (l layout) fieldInner() core.Rect {
	return l.field.Inset(1)
}

func (g *Game) logLines() int {
	return max(g.cfg.Display.LogLines, 1)
}

func (g *Game) minHeight() int {
	return headerHeight + minBodyHeight + g.logLines() + 2 + 1
}

func (g *Game) layout() layout {
	logH := g.logLines() + 2
	bodyH := max(g.screenH-headerHeight-logH-1, 0)
	fieldW := max(g.screenW-barPanelWidth, 0)

	return layout{
		field:    core.NewRect(0, headerHeight, fieldW, bodyH),
		bars:     core.NewRect(fieldW, headerHeight, barPanelWidth, bodyH),
		log:      core.NewRect(0, headerHeight+bodyH, g.screenW, logH),
		controls: g.screenH - 1,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHeader(dst)
	g.renderField(dst, l.field)
	g.renderBars(dst, l.bars)
	g.renderLog(dst, l.log)
	g.renderControls(dst, l.controls)

	if g.sim.Ended() {
		g.renderSummary(dst, l.field)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minWidth, g.minHeight()))
}

func (g *Game) renderHeader(dst *core.Screen) {
	st := g.sim.State()
	rules := g.sim.Rules()

	dst.DrawTextColored(1, 0, "FLORA & FAUNA", core.ColorBrightGreen)
	dst.DrawTextColored(15, 0, "· "+g.title, core.ColorGray)

	turn := min(st.Turn, rules.MaxTurns)
	status := fmt.Sprintf("Turn %d/%d  Balance %d%%", turn, rules.MaxTurns, ecosystem.Balance(st))
	dst.DrawText(1, 1, status)

	if label, c := eventLabel(g.lastEvent); label != "" {
		dst.DrawTextColored(len(status)+3, 1, label, c)
	}
}

func eventLabel(e ecosystem.EventKind) (string, core.Color) {
	switch e {
	case ecosystem.EventDrought:
		return "DROUGHT", core.ColorYellow
	case ecosystem.EventDisease:
		return "DISEASE", core.ColorRed
	case ecosystem.EventMigration:
		return "MIGRATION", core.ColorCyan
	default:
		return "", core.ColorDefault
	}
}

func (g *Game) renderField(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorGray)
	inner := r.Inset(1)

	draw := func(dots []dot, ch rune, c core.Color) {
		for _, d := range dots {
			x := inner.X + int(d.X)
			y := inner.Y + int(d.Y)
			if inner.Contains(x, y) {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
	draw(g.field.plants, plantRune, core.ColorGreen)
	draw(g.field.herbivores, herbivoreRune, core.ColorYellow)
	draw(g.field.predators, predatorRune, core.ColorRed)
}

// barHeight scales a population against its display maximum, capped at height.
func barHeight(value, maxValue, height int) int {
	if value <= 0 || maxValue <= 0 || height <= 0 {
		return 0
	}
	return min(value*height/maxValue, height)
}

func (g *Game) renderBars(dst *core.Screen, r core.Rect) {
	dst.DrawPanel(r, "Populations", core.ColorGray)
	st := g.sim.State()
	d := g.cfg.Display

	bars := []struct {
		label string
		value int
		max   int
		color core.Color
	}{
		{"Plant", st.Plants, d.MaxPlants, core.ColorGreen},
		{"Herb", st.Herbivores, d.MaxHerbivores, core.ColorYellow},
		{"Pred", st.Predators, d.MaxPredators, core.ColorRed},
	}

	// Two rows under the bars hold the label and the count.
	barArea := r.H - 2 - 2
	baseY := r.Y + 1 + barArea
	x := r.X + 2
	for _, b := range bars {
		h := barHeight(b.value, b.max, barArea)
		dst.DrawRect(core.NewRect(x, baseY-h, barWidth, h), barRune, b.color)
		dst.DrawTextColored(x, baseY, b.label, b.color)
		dst.DrawText(x, baseY+1, fmt.Sprintf("%d", b.value))
		x += barWidth + barGap
	}
}

func (g *Game) renderLog(dst *core.Screen, r core.Rect) {
	dst.DrawPanel(r, "Log", core.ColorGray)

	width := r.W - 4
	for i, line := range g.journal.Tail(g.logLines()) {
		dst.DrawTextColored(r.X+2, r.Y+1+i, truncate(line, width), messageColor(line))
	}
}

func messageColor(line string) core.Color {
	switch {
	case strings.HasPrefix(line, "Ecosystem collapsed"):
		return core.ColorBrightRed
	case strings.HasPrefix(line, "Drought!"):
		return core.ColorYellow
	case strings.HasPrefix(line, "Disease!"):
		return core.ColorRed
	case strings.HasPrefix(line, "Predator migration!"):
		return core.ColorCyan
	case strings.HasPrefix(line, "You "):
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

func (g *Game) renderControls(dst *core.Screen, y int) {
	hint := "[1] Plant  [2] Herbivore  [3] Predator  [4] Skip  [?] Help  [Q] Quit"
	if g.sim.Ended() {
		hint = "[R] Restart  [Q] Quit"
	}
	dst.DrawTextColored(1, y, truncate(hint, g.screenW-2), core.ColorGray)
}

func (g *Game) renderSummary(dst *core.Screen, area core.Rect) {
	sum := g.sim.Summary()
	if sum == nil {
		return
	}

	title := "SIMULATION ENDED"
	titleColor := core.ColorBrightGreen
	if sum.Collapsed {
		title = "ECOSYSTEM COLLAPSED"
		titleColor = core.ColorBrightRed
	}

	lines := []string{
		fmt.Sprintf("Plants %d  Herbivores %d  Predators %d",
			sum.Final.Plants, sum.Final.Herbivores, sum.Final.Predators),
		fmt.Sprintf("Turns survived: %d", sum.TurnsSurvived()),
		fmt.Sprintf("Score: %d", sum.Score()),
		"Press R to restart",
	}

	box := area.Center(44, len(lines)+4)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, titleColor)
	inner := box.Inset(1)

	dst.DrawTextCenteredIn(inner, inner.Y, truncate(title, inner.W), titleColor)
	for i, line := range lines {
		y := inner.Y + 2 + i
		if y >= inner.Bottom() {
			break
		}
		dst.DrawTextCenteredIn(inner, y, truncate(line, inner.W), core.ColorDefault)
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
