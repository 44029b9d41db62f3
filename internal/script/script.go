// Package script parses action scripts for the headless runner.
//
// A script is a list of actions separated by whitespace, commas or semicolons.
// An action may carry a repeat count and # starts a comment:
//
//	plant*3, skip   # grow the meadow first
//	herbivore; predator*2
package script

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/vovakirdan/florafauna/internal/ecosystem"
)

// MaxRepeat bounds a single repeat count.
const MaxRepeat = 1000

// Program is the parsed script.
type Program struct {
	Steps []*Step `( @@ ( "," | ";" )? )*`
}

// Step is one action with an optional repeat count.
type Step struct {
	Pos    lexer.Position
	Action string `@Ident`
	Repeat *int   `( "*" @Int )?`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z_-]*`},
	{Name: "Punct", Pattern: `[*,;]`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse parses a script into the sequence of actions it expands to.
func Parse(source string) ([]ecosystem.Action, error) {
	return parse("", source)
}

// ParseFile reads and parses a script file.
func ParseFile(path string) ([]ecosystem.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: cannot read %s: %w", path, err)
	}
	return parse(path, string(data))
}

func parse(name, source string) ([]ecosystem.Action, error) {
	prog, err := parser.ParseString(name, source)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return prog.Expand()
}

// Expand resolves action names and repeat counts.
func (p *Program) Expand() ([]ecosystem.Action, error) {
	var actions []ecosystem.Action
	for _, step := range p.Steps {
		action, err := ecosystem.ParseAction(step.Action)
		if err != nil {
			return nil, fmt.Errorf("script: %s: %w", step.Pos, err)
		}

		n := 1
		if step.Repeat != nil {
			n = *step.Repeat
		}
		if n < 1 || n > MaxRepeat {
			return nil, fmt.Errorf("script: %s: repeat count %d out of range 1..%d", step.Pos, n, MaxRepeat)
		}

		for i := 0; i < n; i++ {
			actions = append(actions, action)
		}
	}
	return actions, nil
}
