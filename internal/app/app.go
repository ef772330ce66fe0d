package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"secretword/internal/countdown"
	"secretword/internal/devtools"
	"secretword/internal/puzzle"
	"secretword/internal/puzzles"
	"secretword/internal/telemetry"
	"secretword/internal/ui"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type App struct {
	cfg Config

	logger *telemetry.JSONLogger
	clock  clockwork.Clock
	demo   devtools.Demo
	view   ui.View

	set       puzzles.Set
	geometry  puzzle.Geometry
	keyword   string
	sessionID string
	startedAt time.Time

	mu       sync.Mutex
	session  *puzzle.Session
	timer    *countdown.Timer
	complete bool
}

func New(cfg Config) (*App, error) {
	logger, err := telemetry.NewJSONLogger(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	set, err := LoadSet(context.Background(), puzzles.NewLoader(), cfg)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	view := ui.New(ui.Options{
		ASCIIOnly:    cfg.ASCIIOnly,
		Debug:        cfg.DebugLayout,
		StyleVariant: cfg.UI.StyleVariant,
		Logger:       logger.Charm("ui", clog.WarnLevel),
	})
	a, err := newApp(cfg, set, view, logger, clockwork.NewRealClock())
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	view.SetController(a)
	return a, nil
}

func newApp(cfg Config, set puzzles.Set, view ui.View, logger *telemetry.JSONLogger, clock clockwork.Clock) (*App, error) {
	entries := set.PuzzleEntries()
	geometry, err := puzzle.ComputeGeometry(entries)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		clock:     clock,
		demo:      devtools.NewManager(),
		view:      view,
		set:       set,
		geometry:  geometry,
		sessionID: uuid.NewString(),
		startedAt: clock.Now(),
	}
	a.logger = logger.With(map[string]any{"session_id": a.sessionID, "set_id": set.SetID})
	a.keyword = puzzle.Normalize(set.Reward.Keyword)
	if a.keyword == "" {
		a.keyword = puzzle.Keyword(entries)
	}

	a.timer = countdown.New(clock, a.onTick)
	session, err := puzzle.NewSession(entries,
		puzzle.WithCountdown(a.countdownDuration()),
		puzzle.WithTimer(a.timer),
		puzzle.WithMessages(set.GameplayMessages()),
	)
	if err != nil {
		return nil, err
	}
	a.session = session
	return a, nil
}

// LoadSet resolves the puzzle set named by cfg: an explicit file, a set from a
// directory, or the builtin set.
func LoadSet(ctx context.Context, loader puzzles.Loader, cfg Config) (puzzles.Set, error) {
	switch {
	case cfg.SetPath != "":
		return loader.LoadFile(cfg.SetPath)
	case cfg.SetsDir != "":
		sets, err := loader.LoadSets(ctx, cfg.SetsDir)
		if err != nil {
			return puzzles.Set{}, err
		}
		if len(sets) == 0 {
			return puzzles.Set{}, fmt.Errorf("no puzzle sets under %s", cfg.SetsDir)
		}
		if cfg.SetID == "" {
			return sets[0], nil
		}
		return loader.FindSet(sets, cfg.SetID)
	default:
		return loader.Builtin()
	}
}

func (a *App) countdownDuration() time.Duration {
	if a.cfg.Countdown > 0 {
		return a.cfg.Countdown
	}
	return a.set.Countdown()
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("app.start", map[string]any{
		"entries":   len(a.set.Entries),
		"countdown": a.countdownDuration().String(),
		"columns":   a.geometry.TotalColumns,
	})

	if a.cfg.DemoScenario != "" {
		if err := a.applyDemoScenario(a.cfg.DemoScenario); err != nil {
			a.logger.Error("demo.apply_failed", map[string]any{"demo": a.cfg.DemoScenario, "error": err.Error()})
			return err
		}
	}

	a.mu.Lock()
	a.push()
	a.mu.Unlock()

	stop := context.AfterFunc(ctx, a.view.Stop)
	defer stop()

	err := a.view.Run()
	sum := a.Summary()
	a.logger.Info("app.stop", map[string]any{
		"solved":   sum.Solved,
		"locked":   sum.Locked,
		"complete": sum.Complete,
		"elapsed":  sum.Elapsed.Round(time.Second).String(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Close() {
	a.mu.Lock()
	a.session.Close()
	a.mu.Unlock()
	a.timer.Stop()
	_ = a.logger.Close()
}

func (a *App) OnSelectRow(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.SelectRow(id) {
		status := a.session.Status(id).String()
		if _, ok := a.session.Entry(id); !ok {
			status = "unknown"
		}
		a.logger.Info("row.select_rejected", map[string]any{"row": id, "status": status})
		a.view.FlashStatus(fmt.Sprintf("Row %d is %s", id, status))
		return
	}
	a.logger.Info("row.selected", map[string]any{"row": id, "remaining": a.session.Remaining(), "generation": a.session.Generation()})
	a.view.FlashStatus("")
	a.push()
}

func (a *App) OnType(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session.TypeText(text) {
		a.push()
	}
}

func (a *App) OnBackspace() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session.Backspace() {
		a.push()
	}
}

func (a *App) OnSubmit() {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, _ := a.session.ActiveID()
	guessLen := len([]rune(a.session.Pending()))
	remaining := a.session.Remaining()
	outcome := a.session.Submit()
	if outcome == puzzle.SubmitIgnored {
		return
	}
	a.logger.Info("answer.submitted", map[string]any{
		"row":       id,
		"outcome":   outcome.String(),
		"length":    guessLen,
		"remaining": remaining,
	})
	if outcome == puzzle.SubmitCorrect {
		a.checkComplete()
	}
	a.push()
}

func (a *App) OnQuit() {
	a.logger.Info("app.quit_requested", nil)
	a.view.Stop()
}

// onTick runs on the countdown goroutine.
func (a *App) onTick(t countdown.Tick) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, _ := a.session.ActiveID()
	switch a.session.TickFor(t.Gen) {
	case puzzle.TickIgnored:
		a.logger.Debug("tick.stale", map[string]any{"generation": t.Gen})
		return
	case puzzle.TickExpired:
		a.logger.Info("row.locked", map[string]any{"row": id})
	}
	a.push()
}

func (a *App) checkComplete() {
	if a.complete || !a.session.IsComplete() {
		return
	}
	a.complete = true
	a.logger.Info("puzzle.complete", map[string]any{"elapsed": a.clock.Since(a.startedAt).Round(time.Second).String()})
}

func (a *App) applyDemoScenario(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	sc, err := a.demo.Resolve(name, a.session.Entries(), a.session.Duration())
	if err != nil {
		return err
	}
	if err := a.demo.Apply(a.session, sc); err != nil {
		return err
	}
	a.checkComplete()
	a.logger.Info("demo.applied", map[string]any{"demo": sc.Name, "steps": len(sc.Steps)})
	return nil
}

// Snapshot returns the current session state.
func (a *App) Snapshot() puzzle.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Snapshot()
}

func (a *App) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	solved, locked, total := a.session.Counts()
	return Summary{
		SessionID: a.sessionID,
		SetID:     a.set.SetID,
		Solved:    solved,
		Locked:    locked,
		Total:     total,
		Complete:  a.complete,
		Keyword:   a.keywordIfComplete(),
		Elapsed:   a.clock.Since(a.startedAt),
	}
}

func (a *App) keywordIfComplete() string {
	if !a.complete {
		return ""
	}
	return a.keyword
}

// push sends the current board to the view. Callers hold a.mu.
func (a *App) push() {
	a.view.SetBoard(a.boardState())
}

func (a *App) boardState() ui.BoardState {
	snap := a.session.Snapshot()
	seconds := snap.Duration

	b := ui.BoardState{
		Title:        a.set.Title,
		Subtitle:     a.set.Subtitle,
		Welcome:      a.set.Welcome,
		Instruction:  a.set.InstructionText(seconds),
		Prompt:       a.set.PromptText(),
		Placeholder:  a.set.PlaceholderText(),
		CenterColumn: a.geometry.CenterColumn,
		TotalColumns: a.geometry.TotalColumns,
		Rows:         make([]ui.RowView, 0, len(snap.Rows)),
		ActiveID:     snap.ActiveID,
		Question:     snap.Question,
		Remaining:    snap.Remaining,
		Duration:     seconds,
		Pending:      snap.Pending,
		FeedbackKind: feedbackKind(snap.Feedback.Kind),
		Feedback:     snap.Feedback.Text,
		Progress:     a.set.ProgressText(snap.Solved, snap.Total),
		Solved:       snap.Solved,
		Total:        snap.Total,
		Complete:     snap.Complete,
	}
	if snap.ActiveID != 0 {
		b.QuestionLabel = a.set.QuestionLabel(snap.ActiveID)
	}
	for _, row := range snap.Rows {
		e, _ := a.session.Entry(row.ID)
		b.Rows = append(b.Rows, ui.RowView{
			ID:        row.ID,
			Start:     a.geometry.Start(e),
			Length:    row.Length,
			Highlight: row.Highlight,
			Status:    rowStatus(row.Status),
			Revealed:  row.Revealed,
		})
	}
	if snap.Complete {
		b.Reward = ui.RewardView{
			Headline: firstNonEmpty(a.set.Reward.Headline, "All rows solved!"),
			Keyword:  a.keyword,
			Footer:   a.set.Reward.Footer,
		}
	}
	return b
}

func rowStatus(s puzzle.RowStatus) ui.RowStatus {
	switch s {
	case puzzle.RowActive:
		return ui.RowActive
	case puzzle.RowSolved:
		return ui.RowSolved
	case puzzle.RowLocked:
		return ui.RowLocked
	default:
		return ui.RowUnselected
	}
}

func feedbackKind(k puzzle.FeedbackKind) ui.FeedbackKind {
	switch k {
	case puzzle.FeedbackTimeout:
		return ui.FeedbackTimeout
	case puzzle.FeedbackEmpty:
		return ui.FeedbackEmpty
	case puzzle.FeedbackWrong:
		return ui.FeedbackWrong
	case puzzle.FeedbackCorrect:
		return ui.FeedbackCorrect
	default:
		return ui.FeedbackNone
	}
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

var _ ui.Controller = (*App)(nil)
