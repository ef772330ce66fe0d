package puzzles

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"secretword/internal/puzzle"
)

const (
	SetKind                = "puzzle_set"
	SupportedSchemaVersion = 1
)

// ErrInvalidSet marks set-level defects found by Validate. Entry and geometry
// defects surface as *puzzle.ConfigError instead.
var ErrInvalidSet = errors.New("invalid puzzle set")

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{2,63}$`)

type Set struct {
	Kind             string       `yaml:"kind"`
	SchemaVersion    int          `yaml:"schema_version"`
	SetID            string       `yaml:"set_id"`
	Title            string       `yaml:"title"`
	Subtitle         string       `yaml:"subtitle"`
	Welcome          string       `yaml:"welcome"`
	Instruction      string       `yaml:"instruction"`
	CountdownSeconds int          `yaml:"countdown_seconds"`
	Reward           RewardSpec   `yaml:"reward"`
	Messages         MessagesSpec `yaml:"messages"`
	Entries          []EntrySpec  `yaml:"entries"`

	Path string `yaml:"-"`
}

type RewardSpec struct {
	Headline string `yaml:"headline"`
	Keyword  string `yaml:"keyword"`
	Footer   string `yaml:"footer"`
}

type MessagesSpec struct {
	Prompt      string `yaml:"prompt"`
	Question    string `yaml:"question"`
	Placeholder string `yaml:"placeholder"`
	Progress    string `yaml:"progress"`
	Timeout     string `yaml:"timeout"`
	Empty       string `yaml:"empty"`
	Wrong       string `yaml:"wrong"`
	Correct     string `yaml:"correct"`
}

type EntrySpec struct {
	ID        int    `yaml:"id"`
	Question  string `yaml:"question"`
	Answer    string `yaml:"answer"`
	Highlight int    `yaml:"highlight"`
}

func (s Set) Validate() error {
	if s.Kind != SetKind {
		return invalid("kind must be %q", SetKind)
	}
	if s.SchemaVersion == 0 {
		return invalid("schema_version is required")
	}
	if s.SchemaVersion > SupportedSchemaVersion {
		return invalid("unsupported set schema_version %d (max supported %d)", s.SchemaVersion, SupportedSchemaVersion)
	}
	if !idPattern.MatchString(s.SetID) {
		return invalid("invalid set_id %q", s.SetID)
	}
	if strings.TrimSpace(s.Title) == "" {
		return invalid("title is required")
	}
	if s.CountdownSeconds < 0 {
		return invalid("countdown_seconds must be >= 0")
	}
	for _, e := range s.Entries {
		if strings.TrimSpace(e.Question) == "" {
			return invalid("entries[id=%d].question is required", e.ID)
		}
	}
	if _, err := puzzle.ComputeGeometry(s.PuzzleEntries()); err != nil {
		return err
	}
	if kw := puzzle.Normalize(s.Reward.Keyword); s.Reward.Keyword != "" && kw == "" {
		return invalid("reward.keyword must contain letters")
	}
	return nil
}

// PuzzleEntries converts the YAML entries, preserving file order.
func (s Set) PuzzleEntries() []puzzle.Entry {
	out := make([]puzzle.Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, puzzle.Entry{
			ID:        e.ID,
			Question:  strings.TrimSpace(e.Question),
			Answer:    strings.TrimSpace(e.Answer),
			Highlight: e.Highlight,
		})
	}
	return out
}

// Countdown is the per-row time configured by the set, or the package
// default when the set leaves it out.
func (s Set) Countdown() time.Duration {
	if s.CountdownSeconds <= 0 {
		return puzzle.DefaultCountdown
	}
	return time.Duration(s.CountdownSeconds) * time.Second
}

func (s Set) GameplayMessages() puzzle.Messages {
	return puzzle.Messages{
		Timeout: s.Messages.Timeout,
		Empty:   s.Messages.Empty,
		Wrong:   s.Messages.Wrong,
		Correct: s.Messages.Correct,
	}.Merge(puzzle.DefaultMessages())
}

// KeywordMismatch reports whether the configured reward keyword differs from
// the letters the highlighted column actually spells.
func (s Set) KeywordMismatch() (configured, spelled string, mismatch bool) {
	configured = puzzle.Normalize(s.Reward.Keyword)
	spelled = puzzle.Keyword(s.PuzzleEntries())
	return configured, spelled, configured != "" && configured != spelled
}

func (s Set) InstructionText(seconds int) string {
	tpl := firstNonEmpty(s.Instruction, "Pick a row number, then answer within {seconds}s")
	return expand(tpl, map[string]string{"seconds": strconv.Itoa(seconds)})
}

func (s Set) PromptText() string {
	return firstNonEmpty(s.Messages.Prompt, "Pick a row to start:")
}

func (s Set) QuestionLabel(id int) string {
	tpl := firstNonEmpty(s.Messages.Question, "Question {id}:")
	return expand(tpl, map[string]string{"id": strconv.Itoa(id)})
}

func (s Set) PlaceholderText() string {
	return firstNonEmpty(s.Messages.Placeholder, "Type your answer")
}

func (s Set) ProgressText(solved, total int) string {
	tpl := firstNonEmpty(s.Messages.Progress, "Solved: {solved} / {total}")
	return expand(tpl, map[string]string{
		"solved": strconv.Itoa(solved),
		"total":  strconv.Itoa(total),
	})
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSet}, args...)...)
}

func expand(tpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
