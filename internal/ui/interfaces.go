package ui

type Controller interface {
	OnSelectRow(id int)
	OnType(text string)
	OnBackspace()
	OnSubmit()
	OnQuit()
}

type View interface {
	Run() error
	Stop()
	SetController(Controller)
	SetBoard(BoardState)
	FlashStatus(msg string)
}

type LayoutMode int

const (
	LayoutWide LayoutMode = iota
	LayoutMedium
	LayoutTooSmall
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutWide:
		return "wide"
	case LayoutMedium:
		return "medium"
	default:
		return "too_small"
	}
}

type RowStatus string

const (
	RowUnselected RowStatus = "unselected"
	RowActive     RowStatus = "active"
	RowSolved     RowStatus = "solved"
	RowLocked     RowStatus = "locked"
)

type FeedbackKind string

const (
	FeedbackNone    FeedbackKind = ""
	FeedbackTimeout FeedbackKind = "timeout"
	FeedbackEmpty   FeedbackKind = "empty"
	FeedbackWrong   FeedbackKind = "wrong"
	FeedbackCorrect FeedbackKind = "correct"
)

// RowView is one numbered row of the grid. Start is the zero-based column of
// the first letter.
type RowView struct {
	ID        int
	Start     int
	Length    int
	Highlight int
	Status    RowStatus
	Revealed  string
}

func (r RowView) Selectable() bool {
	return r.Status == RowUnselected || r.Status == RowActive
}

type RewardView struct {
	Headline string
	Keyword  string
	Footer   string
}

// BoardState is everything the view draws. The controller owns it and pushes
// a fresh copy after every change.
type BoardState struct {
	Title       string
	Subtitle    string
	Welcome     string
	Instruction string
	Prompt      string
	Placeholder string

	CenterColumn int
	TotalColumns int
	Rows         []RowView

	ActiveID      int
	QuestionLabel string
	Question      string
	Remaining     int
	Duration      int
	Pending       string

	FeedbackKind FeedbackKind
	Feedback     string

	Progress string
	Solved   int
	Total    int
	Complete bool
	Reward   RewardView
}

func (b BoardState) rowIndex(id int) int {
	for i, row := range b.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}
