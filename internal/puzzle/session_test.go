package puzzle

import (
	"testing"
	"time"
)

type recordingCountdown struct {
	gen    uint64
	live   bool
	starts int
	stops  int
}

func (c *recordingCountdown) Start() uint64 {
	if c.live {
		c.stops++
	}
	c.gen++
	c.starts++
	c.live = true
	return c.gen
}

func (c *recordingCountdown) Stop() {
	if c.live {
		c.stops++
	}
	c.live = false
}

func newTestSession(t *testing.T, d time.Duration) (*Session, *recordingCountdown) {
	t.Helper()
	timer := &recordingCountdown{}
	s, err := NewSession(cyberEntries(), WithCountdown(d), WithTimer(timer))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, timer
}

func TestNewSessionRejectsInvalidEntries(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatalf("expected configuration error for empty list")
	}
}

func TestSelectRowStartsCountdown(t *testing.T) {
	s, timer := newTestSession(t, 20*time.Second)

	if !s.SelectRow(11) {
		t.Fatalf("expected selection to apply")
	}
	if id, ok := s.ActiveID(); !ok || id != 11 {
		t.Fatalf("expected active row 11, got %d/%v", id, ok)
	}
	if s.Remaining() != 20 {
		t.Fatalf("expected 20s remaining, got %d", s.Remaining())
	}
	if !timer.live || s.Generation() != timer.gen {
		t.Fatalf("expected live countdown bound to generation %d", timer.gen)
	}
}

func TestSelectRowRejectsUnknownRow(t *testing.T) {
	s, timer := newTestSession(t, DefaultCountdown)
	if s.SelectRow(99) {
		t.Fatalf("expected unknown row to be rejected")
	}
	if _, ok := s.ActiveID(); ok || timer.starts != 0 {
		t.Fatalf("expected no active row and no countdown")
	}
}

func TestSelectRowTwiceIsIdempotent(t *testing.T) {
	s, timer := newTestSession(t, DefaultCountdown)
	s.SelectRow(4)
	s.Tick()
	s.TypeText("integ")
	first := s.Snapshot()
	s.SelectRow(4)
	second := s.Snapshot()

	if second.ActiveID != 4 || second.Remaining != 45 || second.Pending != "" {
		t.Fatalf("unexpected state after reselect: %+v", second)
	}
	for i := range first.Rows {
		if first.Rows[i].Status != second.Rows[i].Status {
			t.Fatalf("row %d changed status: %v -> %v", first.Rows[i].ID, first.Rows[i].Status, second.Rows[i].Status)
		}
	}
	if timer.starts != 2 || timer.stops != 1 || !timer.live {
		t.Fatalf("expected restart to cancel previous countdown, starts=%d stops=%d", timer.starts, timer.stops)
	}
}

func TestSwitchingRowsLeavesPreviousUnselected(t *testing.T) {
	s, timer := newTestSession(t, DefaultCountdown)
	s.SelectRow(1)
	oldGen := s.Generation()
	s.SelectRow(2)

	if got := s.Status(1); got != RowUnselected {
		t.Fatalf("expected row 1 unselected, got %v", got)
	}
	if got := s.Status(2); got != RowActive {
		t.Fatalf("expected row 2 active, got %v", got)
	}
	if timer.stops != 1 {
		t.Fatalf("expected the first countdown to be stopped, stops=%d", timer.stops)
	}
	if out := s.TickFor(oldGen); out != TickIgnored {
		t.Fatalf("expected stale tick to be ignored, got %v", out)
	}
	if s.Remaining() != 45 {
		t.Fatalf("stale tick changed remaining: %d", s.Remaining())
	}
	if out := s.TickFor(s.Generation()); out != TickCounted || s.Remaining() != 44 {
		t.Fatalf("expected live tick to count, got %v remaining=%d", out, s.Remaining())
	}
}

func TestTimeoutLocksAfterExactlyDurationTicks(t *testing.T) {
	const d = 5
	s, timer := newTestSession(t, d*time.Second)
	s.SelectRow(3)

	for i := 1; i < d; i++ {
		if out := s.Tick(); out != TickCounted {
			t.Fatalf("tick %d: expected count, got %v", i, out)
		}
		if s.Status(3) != RowActive {
			t.Fatalf("tick %d: row should still be active", i)
		}
	}
	if out := s.Tick(); out != TickExpired {
		t.Fatalf("tick %d: expected expiry, got %v", d, out)
	}
	if s.Status(3) != RowLocked {
		t.Fatalf("expected row 3 locked")
	}
	if _, ok := s.ActiveID(); ok {
		t.Fatalf("expected no active row after timeout")
	}
	if s.Feedback().Kind != FeedbackTimeout {
		t.Fatalf("expected timeout feedback, got %+v", s.Feedback())
	}
	if timer.live || s.TimerRunning() {
		t.Fatalf("expected countdown to be cancelled")
	}
}

func TestLockedRowCannotBeReselected(t *testing.T) {
	s, _ := newTestSession(t, 3*time.Second)
	s.SelectRow(3)
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if s.SelectRow(3) {
		t.Fatalf("expected locked row to be rejected")
	}
	if _, ok := s.ActiveID(); ok {
		t.Fatalf("expected active row to stay empty")
	}
	row, _ := s.Row(3)
	if !row.Locked || row.Solved {
		t.Fatalf("unexpected row state: %+v", row)
	}
}

func TestWrongThenRightAnswer(t *testing.T) {
	s, timer := newTestSession(t, DefaultCountdown)
	s.SelectRow(11)

	if out := s.SubmitAnswer("WORM"); out != SubmitWrong {
		t.Fatalf("expected wrong, got %v", out)
	}
	if s.Status(11) != RowActive || !timer.live {
		t.Fatalf("expected row to stay active with a running countdown")
	}
	if s.Feedback().Kind != FeedbackWrong || s.Pending() != "" {
		t.Fatalf("expected failure feedback and cleared input")
	}
	s.Tick()

	if out := s.SubmitAnswer("virus"); out != SubmitCorrect {
		t.Fatalf("expected correct, got %v", out)
	}
	row, _ := s.Row(11)
	if !row.Solved || string(row.Revealed) != "VIRUS" {
		t.Fatalf("unexpected row after solve: %+v", row)
	}
	if timer.live {
		t.Fatalf("expected countdown cancelled after solve")
	}
	if out := s.Tick(); out != TickIgnored {
		t.Fatalf("expected tick with no active row to be ignored")
	}
}

func TestCaseInsensitiveMatch(t *testing.T) {
	for _, guess := range []string{"encryption", "EnCrypTion", "  ENCRYPTION  "} {
		s, _ := newTestSession(t, DefaultCountdown)
		s.SelectRow(1)
		if out := s.SubmitAnswer(guess); out != SubmitCorrect {
			t.Fatalf("guess %q: expected correct, got %v", guess, out)
		}
		if s.Status(1) != RowSolved {
			t.Fatalf("guess %q: expected solved", guess)
		}
	}
}

func TestEmptySubmissionKeepsRowActive(t *testing.T) {
	s, _ := newTestSession(t, DefaultCountdown)
	s.SelectRow(2)
	s.Tick()
	if out := s.SubmitAnswer("   "); out != SubmitEmpty {
		t.Fatalf("expected empty, got %v", out)
	}
	if s.Status(2) != RowActive || s.Remaining() != 44 {
		t.Fatalf("empty submission must not change state")
	}
	if s.Feedback().Text != DefaultMessages().Empty {
		t.Fatalf("unexpected feedback %q", s.Feedback().Text)
	}
}

func TestSubmitWithoutActiveRowIsIgnored(t *testing.T) {
	s, _ := newTestSession(t, DefaultCountdown)
	if out := s.SubmitAnswer("VIRUS"); out != SubmitIgnored {
		t.Fatalf("expected ignored, got %v", out)
	}
	if s.SetInput("abc") || s.TypeText("a") || s.Backspace() {
		t.Fatalf("input must be rejected with no active row")
	}
}

func TestInputEditing(t *testing.T) {
	s, _ := newTestSession(t, DefaultCountdown)
	s.SelectRow(11)
	s.TypeText("v")
	s.TypeText("i1r")
	if s.Pending() != "VIR" {
		t.Fatalf("expected VIR, got %q", s.Pending())
	}
	s.Backspace()
	if s.Pending() != "VI" {
		t.Fatalf("expected VI, got %q", s.Pending())
	}
	s.SetInput("virus")
	if out := s.Submit(); out != SubmitCorrect {
		t.Fatalf("expected pending input to solve, got %v", out)
	}
}

func TestInputCappedAtAnswerLength(t *testing.T) {
	s, _ := newTestSession(t, DefaultCountdown)
	s.SelectRow(11)
	s.TypeText("virusvirusvirusvirus")
	if got := s.Pending(); got != "VIRUS" {
		t.Fatalf("expected input capped to VIRUS, got %q", got)
	}
	s.TypeText("x")
	if got := s.Pending(); got != "VIRUS" {
		t.Fatalf("typing at the cap must not grow input, got %q", got)
	}
	s.SetInput("wormwormworm")
	if got := s.Pending(); got != "WORMW" {
		t.Fatalf("expected SetInput capped to WORMW, got %q", got)
	}
}

func TestPaddedAnswerLengthMatchesRevealed(t *testing.T) {
	entries := []Entry{
		{ID: 1, Question: "q1", Answer: "  VIRUS ", Highlight: 2},
		{ID: 2, Question: "q2", Answer: "WORM", Highlight: 1},
	}
	g, err := ComputeGeometry(entries)
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	if g.TotalColumns != 6 {
		t.Fatalf("expected 6 columns, got %d", g.TotalColumns)
	}
	s, err := NewSession(entries)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.SelectRow(1)
	if out := s.SubmitAnswer("virus"); out != SubmitCorrect {
		t.Fatalf("expected correct, got %v", out)
	}
	row := s.Snapshot().Rows[0]
	if row.Length != 5 || row.Revealed != "VIRUS" {
		t.Fatalf("length %d disagrees with revealed %q", row.Length, row.Revealed)
	}
}

func TestTerminalStatesAreMonotonic(t *testing.T) {
	s, _ := newTestSession(t, 2*time.Second)
	s.SelectRow(5)
	s.SubmitAnswer("ransomware")
	s.SelectRow(6)
	s.Tick()
	s.Tick()

	ops := []func(){
		func() { s.SelectRow(5) },
		func() { s.SelectRow(6) },
		func() { s.SubmitAnswer("phishing") },
		func() { s.Tick() },
		func() { s.SelectRow(7); s.SubmitAnswer("x"); s.Tick(); s.Tick() },
		func() { s.TickFor(1) },
	}
	for i, op := range ops {
		op()
		if s.Status(5) != RowSolved {
			t.Fatalf("op %d: row 5 left solved state", i)
		}
		if s.Status(6) != RowLocked {
			t.Fatalf("op %d: row 6 left locked state", i)
		}
	}
}

func TestCompletionAfterSolvingEveryRow(t *testing.T) {
	s, _ := newTestSession(t, DefaultCountdown)
	for _, e := range cyberEntries() {
		if s.IsComplete() {
			t.Fatalf("complete before row %d solved", e.ID)
		}
		if !s.SelectRow(e.ID) {
			t.Fatalf("select %d rejected", e.ID)
		}
		s.Tick()
		if out := s.SubmitAnswer(e.Answer); out != SubmitCorrect {
			t.Fatalf("row %d: expected correct, got %v", e.ID, out)
		}
	}
	if !s.IsComplete() {
		t.Fatalf("expected completion")
	}

	s.SelectRow(1)
	s.SubmitAnswer("nope")
	s.Tick()
	s.Backspace()
	if !s.IsComplete() {
		t.Fatalf("completion must survive no-op operations")
	}
	snap := s.Snapshot()
	if !snap.Complete || snap.Solved != 13 || snap.Total != 13 {
		t.Fatalf("unexpected snapshot counts: %+v", snap)
	}
}

func TestWithCountdownRoundsUp(t *testing.T) {
	s, err := NewSession(cyberEntries(), WithCountdown(1500*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if s.Duration() != 2 {
		t.Fatalf("expected 2s, got %d", s.Duration())
	}
}

func TestWithMessagesFillsBlanks(t *testing.T) {
	s, err := NewSession(cyberEntries(), WithMessages(Messages{Wrong: "nope"}))
	if err != nil {
		t.Fatal(err)
	}
	s.SelectRow(1)
	s.SubmitAnswer("x")
	if s.Feedback().Text != "nope" {
		t.Fatalf("expected custom copy, got %q", s.Feedback().Text)
	}
	s.SubmitAnswer("")
	if s.Feedback().Text != DefaultMessages().Empty {
		t.Fatalf("expected default copy, got %q", s.Feedback().Text)
	}
}
