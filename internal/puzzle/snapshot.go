package puzzle

// RowSnapshot is the render-facing view of one row.
type RowSnapshot struct {
	ID        int
	Question  string
	Length    int
	Highlight int
	Status    RowStatus
	Revealed  string
}

// Snapshot is everything a presentation layer needs to draw the session.
type Snapshot struct {
	Rows      []RowSnapshot
	ActiveID  int
	Question  string
	Remaining int
	Duration  int
	Feedback  Feedback
	Pending   string
	Solved    int
	Locked    int
	Total     int
	Complete  bool
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:      make([]RowSnapshot, 0, len(s.entries)),
		ActiveID:  s.activeID,
		Remaining: s.remaining,
		Duration:  s.duration,
		Feedback:  s.feedback,
		Pending:   s.pending,
	}
	for i, e := range s.entries {
		snap.Rows = append(snap.Rows, RowSnapshot{
			ID:        e.ID,
			Question:  e.Question,
			Length:    e.Length(),
			Highlight: e.Highlight,
			Status:    s.Status(e.ID),
			Revealed:  string(s.rows[i].Revealed),
		})
		if e.ID == s.activeID {
			snap.Question = e.Question
		}
	}
	snap.Solved, snap.Locked, snap.Total = s.Counts()
	snap.Complete = snap.Solved == snap.Total
	return snap
}
