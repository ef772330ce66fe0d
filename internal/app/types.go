package app

import "time"

// Summary describes a finished or running play-through.
type Summary struct {
	SessionID string
	SetID     string
	Solved    int
	Locked    int
	Total     int
	Complete  bool
	Keyword   string
	Elapsed   time.Duration
}
