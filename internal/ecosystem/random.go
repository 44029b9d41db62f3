package ecosystem

// Source supplies uniform draws in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Fixed is a Source that always returns the same value.
type Fixed float64

// Float64 returns the fixed value.
func (f Fixed) Float64() float64 {
	return float64(f)
}

// Sequence replays a list of draws in order, repeating the last one when exhausted.
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence creates a Sequence over the given draws.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next draw.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.pos >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.pos]
	s.pos++
	return v
}
