package puzzle

import (
	"math"
	"time"
)

const (
	// DefaultCountdown is the time a player has to answer a selected row.
	DefaultCountdown = 45 * time.Second
	// ShortCountdown is the faster variant used by the quick-play deployment.
	ShortCountdown = 20 * time.Second
)

// Countdown is the cancellable per-row timer. Start cancels whatever was
// running and returns the generation of the new countdown; the ticks it
// produces must be fed back through Session.TickFor with that generation.
type Countdown interface {
	Start() uint64
	Stop()
}

type RowStatus int

const (
	RowUnselected RowStatus = iota
	RowActive
	RowSolved
	RowLocked
)

func (s RowStatus) String() string {
	switch s {
	case RowActive:
		return "active"
	case RowSolved:
		return "solved"
	case RowLocked:
		return "locked"
	default:
		return "unselected"
	}
}

type RowState struct {
	Solved   bool
	Locked   bool
	Revealed []rune
}

type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackTimeout
	FeedbackEmpty
	FeedbackWrong
	FeedbackCorrect
)

type Feedback struct {
	Kind FeedbackKind
	Text string
}

type SubmitOutcome int

const (
	SubmitIgnored SubmitOutcome = iota
	SubmitEmpty
	SubmitWrong
	SubmitCorrect
)

func (o SubmitOutcome) String() string {
	switch o {
	case SubmitEmpty:
		return "empty"
	case SubmitWrong:
		return "wrong"
	case SubmitCorrect:
		return "correct"
	default:
		return "ignored"
	}
}

type TickOutcome int

const (
	TickIgnored TickOutcome = iota
	TickCounted
	TickExpired
)

// Session is the state machine for one play-through of an entry list. It is
// not safe for concurrent use; callers serialize access.
type Session struct {
	entries  []Entry
	index    map[int]int
	rows     []RowState
	messages Messages
	duration int

	timer    Countdown
	timerGen uint64

	activeID  int
	remaining int
	feedback  Feedback
	pending   string
}

type Option func(*Session)

// WithCountdown sets the per-row countdown. Durations are rounded up to whole
// seconds; anything under one second becomes one second.
func WithCountdown(d time.Duration) Option {
	return func(s *Session) {
		if d <= 0 {
			return
		}
		s.duration = max(1, int(math.Ceil(d.Seconds())))
	}
}

func WithTimer(c Countdown) Option {
	return func(s *Session) {
		if c != nil {
			s.timer = c
		}
	}
}

func WithMessages(m Messages) Option {
	return func(s *Session) {
		s.messages = m.Merge(DefaultMessages())
	}
}

func NewSession(entries []Entry, opts ...Option) (*Session, error) {
	if err := ValidateEntries(entries); err != nil {
		return nil, err
	}
	s := &Session{
		entries:  append([]Entry(nil), entries...),
		index:    make(map[int]int, len(entries)),
		rows:     make([]RowState, len(entries)),
		messages: DefaultMessages(),
		duration: int(DefaultCountdown / time.Second),
		timer:    &manualCountdown{},
	}
	for i, e := range s.entries {
		s.index[e.ID] = i
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SelectRow makes id the active row and restarts the countdown. It returns
// false, leaving the session untouched, when the row is unknown, solved or
// locked.
func (s *Session) SelectRow(id int) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	if st := s.rows[i]; st.Solved || st.Locked {
		return false
	}
	s.stopTimer()
	s.activeID = id
	s.feedback = Feedback{}
	s.pending = ""
	s.remaining = s.duration
	s.timerGen = s.timer.Start()
	return true
}

// Tick advances the active countdown by one second.
func (s *Session) Tick() TickOutcome {
	if s.activeID == 0 {
		return TickIgnored
	}
	s.remaining--
	if s.remaining > 0 {
		return TickCounted
	}
	i := s.index[s.activeID]
	s.stopTimer()
	s.rows[i].Locked = true
	s.activeID = 0
	s.remaining = 0
	s.pending = ""
	s.feedback = Feedback{Kind: FeedbackTimeout, Text: s.messages.Timeout}
	return TickExpired
}

// TickFor applies a tick only when gen identifies the live countdown. Ticks
// from a cancelled countdown are dropped.
func (s *Session) TickFor(gen uint64) TickOutcome {
	if gen == 0 || gen != s.timerGen {
		return TickIgnored
	}
	return s.Tick()
}

// SetInput replaces the pending input. Input is only accepted while a row is
// active.
func (s *Session) SetInput(text string) bool {
	if s.activeID == 0 {
		return false
	}
	s.pending = s.capInput(Normalize(text))
	return true
}

func (s *Session) TypeText(text string) bool {
	if s.activeID == 0 {
		return false
	}
	s.pending = s.capInput(s.pending + Normalize(text))
	return true
}

// capInput trims pending input to the active answer's length.
func (s *Session) capInput(text string) string {
	limit := s.entries[s.index[s.activeID]].Length()
	if r := []rune(text); len(r) > limit {
		return string(r[:limit])
	}
	return text
}

func (s *Session) Backspace() bool {
	if s.activeID == 0 || s.pending == "" {
		return false
	}
	r := []rune(s.pending)
	s.pending = string(r[:len(r)-1])
	return true
}

// Submit checks the pending input.
func (s *Session) Submit() SubmitOutcome {
	return s.SubmitAnswer(s.pending)
}

func (s *Session) SubmitAnswer(text string) SubmitOutcome {
	if s.activeID == 0 {
		return SubmitIgnored
	}
	guess := Normalize(text)
	if guess == "" {
		s.feedback = Feedback{Kind: FeedbackEmpty, Text: s.messages.Empty}
		return SubmitEmpty
	}
	i := s.index[s.activeID]
	answer := Normalize(s.entries[i].Answer)
	if guess != answer {
		s.pending = ""
		s.feedback = Feedback{Kind: FeedbackWrong, Text: s.messages.Wrong}
		return SubmitWrong
	}
	s.stopTimer()
	s.rows[i].Solved = true
	s.rows[i].Revealed = []rune(answer)
	s.activeID = 0
	s.remaining = 0
	s.pending = ""
	s.feedback = Feedback{Kind: FeedbackCorrect, Text: s.messages.Correct}
	return SubmitCorrect
}

func (s *Session) IsComplete() bool {
	for _, st := range s.rows {
		if !st.Solved {
			return false
		}
	}
	return true
}

// Close cancels the live countdown, if any.
func (s *Session) Close() {
	s.stopTimer()
}

func (s *Session) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

func (s *Session) Entry(id int) (Entry, bool) {
	i, ok := s.index[id]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

func (s *Session) Row(id int) (RowState, bool) {
	i, ok := s.index[id]
	if !ok {
		return RowState{}, false
	}
	st := s.rows[i]
	st.Revealed = append([]rune(nil), st.Revealed...)
	return st, true
}

func (s *Session) Status(id int) RowStatus {
	i, ok := s.index[id]
	if !ok {
		return RowUnselected
	}
	switch {
	case s.rows[i].Solved:
		return RowSolved
	case s.rows[i].Locked:
		return RowLocked
	case id == s.activeID:
		return RowActive
	default:
		return RowUnselected
	}
}

func (s *Session) ActiveID() (int, bool) {
	return s.activeID, s.activeID != 0
}

func (s *Session) Remaining() int     { return s.remaining }
func (s *Session) Duration() int      { return s.duration }
func (s *Session) Feedback() Feedback { return s.feedback }
func (s *Session) Pending() string    { return s.pending }
func (s *Session) Generation() uint64 { return s.timerGen }
func (s *Session) TimerRunning() bool { return s.timerGen != 0 }
func (s *Session) Messages() Messages { return s.messages }

func (s *Session) Counts() (solved, locked, total int) {
	for _, st := range s.rows {
		if st.Solved {
			solved++
		}
		if st.Locked {
			locked++
		}
	}
	return solved, locked, len(s.rows)
}

func (s *Session) stopTimer() {
	if s.timerGen == 0 {
		return
	}
	s.timer.Stop()
	s.timerGen = 0
}

// manualCountdown is used when no real timer is attached: ticks are driven by
// the caller through Tick.
type manualCountdown struct {
	gen uint64
}

func (m *manualCountdown) Start() uint64 {
	m.gen++
	return m.gen
}

func (m *manualCountdown) Stop() {}
