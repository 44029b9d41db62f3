package script

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/florafauna/internal/ecosystem"
)

func TestParse(t *testing.T) {
	const (
		plant = ecosystem.ActionPlantSeeds
		herb  = ecosystem.ActionAddHerbivore
		pred  = ecosystem.ActionAddPredator
		skip  = ecosystem.ActionSkip
	)

	tests := []struct {
		name   string
		source string
		want   []ecosystem.Action
	}{
		{"empty", "", nil},
		{"only comment", "# nothing to do", nil},
		{"single", "skip", []ecosystem.Action{skip}},
		{"whitespace separated", "plant herbivore predator", []ecosystem.Action{plant, herb, pred}},
		{"commas and semicolons", "plant, skip; pred", []ecosystem.Action{plant, skip, pred}},
		{"repeat", "plant*3", []ecosystem.Action{plant, plant, plant}},
		{"repeat with spaces", "skip * 2, herb", []ecosystem.Action{skip, skip, herb}},
		{"aliases and case", "Seeds WAIT", []ecosystem.Action{plant, skip}},
		{
			"multiline with comments",
			"plant*2   # early growth\nherbivore\n# rest\nskip",
			[]ecosystem.Action{plant, plant, herb, skip},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.source)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.source, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestParseUnknownAction(t *testing.T) {
	_, err := Parse("plant, dance")
	if !errors.Is(err, ecosystem.ErrInvalidAction) {
		t.Errorf("Parse() error = %v, want ErrInvalidAction", err)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"plant*0",
		"plant*1001",
		"plant*",
		"*3",
		"3",
	} {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q) should fail", src)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.ff")
	if err := os.WriteFile(path, []byte("plant\nskip*2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() failed: %v", err)
	}
	want := []ecosystem.Action{ecosystem.ActionPlantSeeds, ecosystem.ActionSkip, ecosystem.ActionSkip}
	if !slices.Equal(got, want) {
		t.Errorf("ParseFile() = %v, want %v", got, want)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.ff")); err == nil {
		t.Error("ParseFile() should fail for a missing file")
	}
}
