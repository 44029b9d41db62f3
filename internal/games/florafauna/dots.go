package florafauna

import (
	"math/rand"

	"github.com/vovakirdan/florafauna/internal/ecosystem"
)

// Dot caps keep the field readable with large populations.
const (
	maxPlantDots     = 50
	maxHerbivoreDots = 30
	maxPredatorDots  = 15

	herbivoreSpeed = 0.25 // cells per tick
	predatorSpeed  = 0.4
)

// dot is one animated creature. Plants have zero velocity.
type dot struct {
	X, Y   float64
	DX, DY float64
}

// field holds the cosmetic population dots. Coordinates are relative to the
// field interior, so (0,0) is its top-left cell.
type field struct {
	w, h       int
	plants     []dot
	herbivores []dot
	predators  []dot
}

// dotCounts returns how many dots each population is drawn with.
func dotCounts(s ecosystem.State) (plants, herbivores, predators int) {
	return min(s.Plants/2, maxPlantDots),
		min(s.Herbivores, maxHerbivoreDots),
		min(s.Predators, maxPredatorDots)
}

// sync matches the dot slices to the current populations. Existing dots keep
// their vertical position and velocity; all of them are re-spaced horizontally.
func (f *field) sync(s ecosystem.State, rng *rand.Rand) {
	np, nh, nd := dotCounts(s)
	f.plants = f.fit(f.plants, np, 0, rng)
	f.herbivores = f.fit(f.herbivores, nh, herbivoreSpeed, rng)
	f.predators = f.fit(f.predators, nd, predatorSpeed, rng)
}

func (f *field) fit(dots []dot, n int, speed float64, rng *rand.Rand) []dot {
	if n < len(dots) {
		dots = dots[:n]
	}
	for len(dots) < n {
		dots = append(dots, dot{
			Y:  rng.Float64() * float64(max(f.h-1, 0)),
			DX: (rng.Float64()*2 - 1) * speed,
			DY: (rng.Float64()*2 - 1) * speed,
		})
	}

	spacing := float64(f.w) / float64(n+1)
	for i := range dots {
		dots[i].X = min(spacing*float64(i+1), float64(max(f.w-1, 0)))
	}
	return dots
}

// resize changes the field interior and pulls dots back inside it.
func (f *field) resize(w, h int) {
	f.w, f.h = max(w, 0), max(h, 0)
	for _, dots := range [][]dot{f.plants, f.herbivores, f.predators} {
		for i := range dots {
			dots[i].X = clampF(dots[i].X, 0, float64(max(f.w-1, 0)))
			dots[i].Y = clampF(dots[i].Y, 0, float64(max(f.h-1, 0)))
		}
	}
}

// animate moves the animals one tick, bouncing off the field walls.
func (f *field) animate() {
	maxX := float64(max(f.w-1, 0))
	maxY := float64(max(f.h-1, 0))
	for _, dots := range [][]dot{f.herbivores, f.predators} {
		for i := range dots {
			d := &dots[i]
			d.X, d.DX = bounce(d.X+d.DX, d.DX, maxX)
			d.Y, d.DY = bounce(d.Y+d.DY, d.DY, maxY)
		}
	}
}

func bounce(pos, vel, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		return clampF(-pos, 0, limit), -vel
	case pos > limit:
		return clampF(2*limit-pos, 0, limit), -vel
	}
	return pos, vel
}

func clampF(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
