package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrNoEntries           = errors.New("entry list is empty")
	ErrHighlightOutOfRange = errors.New("highlight index out of range")
	ErrInvalidEntry        = errors.New("invalid entry")
)

// ConfigError reports a defect in the static entry list. It is raised before a
// session starts and never during play.
type ConfigError struct {
	EntryID int
	Err     error
	Detail  string
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.EntryID != 0 {
		msg = fmt.Sprintf("entry %d: %s", e.EntryID, msg)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return "puzzle configuration: " + msg
}

func (e *ConfigError) Unwrap() error { return e.Err }
