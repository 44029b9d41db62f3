package ecosystem

import (
	"errors"
	"testing"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  int
	}{
		{"initial", State{Plants: 50, Herbivores: 10, Predators: 3}, 95},
		{"after first skip", State{Plants: 40, Herbivores: 8, Predators: 3}, 94},
		{"empty world", State{}, 100},
		{"no plants", State{Herbivores: 10}, 0},
		{"no predators", State{Plants: 100, Herbivores: 20}, 50},
		{"plants only", State{Plants: 858}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Balance(tt.state); got != tt.want {
				t.Errorf("Balance(%+v) = %d, want %d", tt.state, got, tt.want)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"plant", ActionPlantSeeds},
		{"Seeds", ActionPlantSeeds},
		{"herbivore", ActionAddHerbivore},
		{"herb", ActionAddHerbivore},
		{" predator ", ActionAddPredator},
		{"skip", ActionSkip},
		{"wait", ActionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if err != nil {
				t.Fatalf("ParseAction(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseAction("meteor"); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("ParseAction(meteor) error = %v, want ErrInvalidAction", err)
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for _, a := range Actions {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if Action(0).Valid() || Action(5).Valid() {
		t.Error("out-of-range actions should be invalid")
	}
}

func TestSequenceSource(t *testing.T) {
	seq := NewSequence(0.1, 0.2)
	got := []float64{seq.Float64(), seq.Float64(), seq.Float64()}
	want := []float64{0.1, 0.2, 0.2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %v, want %v", i, got[i], want[i])
		}
	}

	if NewSequence().Float64() != 0 {
		t.Error("empty sequence should return 0")
	}
}
