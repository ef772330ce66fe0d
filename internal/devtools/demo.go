// Package devtools scripts deterministic board states for demos, screenshots
// and layout debugging.
package devtools

import (
	"fmt"
	"sort"
	"strings"

	"secretword/internal/puzzle"
)

type Op string

const (
	OpSelect Op = "select"
	OpType   Op = "type"
	OpSubmit Op = "submit"
	OpTick   Op = "tick"
)

type Step struct {
	Op   Op
	Row  int
	Text string
}

func (s Step) String() string {
	switch s.Op {
	case OpSelect:
		return fmt.Sprintf("select %d", s.Row)
	case OpType:
		return fmt.Sprintf("type %q", s.Text)
	default:
		return string(s.Op)
	}
}

type Scenario struct {
	Name        string
	Description string
	Steps       []Step
}

type builder func(entries []puzzle.Entry, duration int) []Step

type scenarioDef struct {
	description string
	build       builder
}

var scenarios = map[string]scenarioDef{
	"fresh": {
		description: "nothing selected",
		build:       func([]puzzle.Entry, int) []Step { return nil },
	},
	"active": {
		description: "first row open with part of the answer typed",
		build: func(entries []puzzle.Entry, _ int) []Step {
			e := entries[0]
			r := []rune(puzzle.Normalize(e.Answer))
			partial := string(r[:(len(r)+1)/2])
			return []Step{{Op: OpSelect, Row: e.ID}, {Op: OpTick}, {Op: OpTick}, {Op: OpType, Text: partial}}
		},
	},
	"wrong": {
		description: "first row open right after a wrong answer",
		build: func(entries []puzzle.Entry, _ int) []Step {
			e := entries[0]
			return []Step{{Op: OpSelect, Row: e.ID}, {Op: OpType, Text: wrongGuess(e.Answer)}, {Op: OpSubmit}}
		},
	},
	"locked": {
		description: "first row timed out",
		build: func(entries []puzzle.Entry, duration int) []Step {
			steps := []Step{{Op: OpSelect, Row: entries[0].ID}}
			for i := 0; i < duration; i++ {
				steps = append(steps, Step{Op: OpTick})
			}
			return steps
		},
	},
	"halfway": {
		description: "first half solved, one row locked",
		build: func(entries []puzzle.Entry, duration int) []Step {
			half := len(entries) / 2
			steps := solveSteps(entries[:half])
			if half < len(entries) {
				steps = append(steps, Step{Op: OpSelect, Row: entries[half].ID})
				for i := 0; i < duration; i++ {
					steps = append(steps, Step{Op: OpTick})
				}
			}
			return steps
		},
	},
	"complete": {
		description: "every row solved, reward visible",
		build: func(entries []puzzle.Entry, _ int) []Step {
			return solveSteps(entries)
		},
	},
}

type Manager struct{}

func NewManager() *Manager { return &Manager{} }

func (m *Manager) Names() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manager) Resolve(name string, entries []puzzle.Entry, duration int) (Scenario, error) {
	def, ok := scenarios[strings.TrimSpace(name)]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown demo scenario %q (known: %s)", name, strings.Join(m.Names(), ", "))
	}
	if len(entries) == 0 {
		return Scenario{}, fmt.Errorf("demo scenario %q needs at least one entry", name)
	}
	return Scenario{Name: name, Description: def.description, Steps: def.build(entries, max(1, duration))}, nil
}

// Apply replays sc against d. A rejected selection stops the replay.
func (m *Manager) Apply(d Driver, sc Scenario) error {
	for i, step := range sc.Steps {
		switch step.Op {
		case OpSelect:
			if !d.SelectRow(step.Row) {
				return fmt.Errorf("demo %s step %d: row %d cannot be selected", sc.Name, i, step.Row)
			}
		case OpType:
			d.TypeText(step.Text)
		case OpSubmit:
			d.Submit()
		case OpTick:
			d.Tick()
		default:
			return fmt.Errorf("demo %s step %d: unknown op %q", sc.Name, i, step.Op)
		}
	}
	return nil
}

func solveSteps(entries []puzzle.Entry) []Step {
	steps := make([]Step, 0, len(entries)*3)
	for _, e := range entries {
		steps = append(steps,
			Step{Op: OpSelect, Row: e.ID},
			Step{Op: OpType, Text: e.Answer},
			Step{Op: OpSubmit},
		)
	}
	return steps
}

// wrongGuess returns a same-length guess that never matches answer.
func wrongGuess(answer string) string {
	r := []rune(puzzle.Normalize(answer))
	for i := range r {
		if r[i] == 'X' {
			r[i] = 'Y'
		} else {
			r[i] = 'X'
		}
	}
	return string(r)
}
