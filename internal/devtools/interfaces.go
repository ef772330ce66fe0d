package devtools

import "secretword/internal/puzzle"

type Demo interface {
	Names() []string
	Resolve(name string, entries []puzzle.Entry, duration int) (Scenario, error)
	Apply(d Driver, sc Scenario) error
}

// Driver is the slice of the session a scenario plays against.
type Driver interface {
	SelectRow(id int) bool
	TypeText(text string) bool
	Submit() puzzle.SubmitOutcome
	Tick() puzzle.TickOutcome
}
