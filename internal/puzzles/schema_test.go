package puzzles

import (
	"errors"
	"testing"
	"time"

	"secretword/internal/puzzle"
)

func validSet() Set {
	return Set{
		Kind:          SetKind,
		SchemaVersion: 1,
		SetID:         "test-set",
		Title:         "x",
		Entries: []EntrySpec{
			{ID: 1, Question: "q1", Answer: "VIRUS", Highlight: 1},
			{ID: 2, Question: "q2", Answer: "AB", Highlight: 2},
		},
	}
}

func TestSetValidateRejectsUnsupportedSchemaVersion(t *testing.T) {
	s := validSet()
	s.SchemaVersion = SupportedSchemaVersion + 1
	if err := s.Validate(); !errors.Is(err, ErrInvalidSet) {
		t.Fatalf("expected unsupported schema version error, got %v", err)
	}
}

func TestSetValidateRejectsBadHeader(t *testing.T) {
	cases := map[string]func(*Set){
		"kind":      func(s *Set) { s.Kind = "level" },
		"version":   func(s *Set) { s.SchemaVersion = 0 },
		"id":        func(s *Set) { s.SetID = "X" },
		"title":     func(s *Set) { s.Title = "  " },
		"countdown": func(s *Set) { s.CountdownSeconds = -1 },
		"question":  func(s *Set) { s.Entries[0].Question = "" },
		"keyword":   func(s *Set) { s.Reward.Keyword = "123" },
		"entries":   func(s *Set) { s.Entries = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := validSet()
			mutate(&s)
			err := s.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var cfgErr *puzzle.ConfigError
			if !errors.Is(err, ErrInvalidSet) && !errors.As(err, &cfgErr) {
				t.Fatalf("error %v is neither ErrInvalidSet nor a ConfigError", err)
			}
		})
	}
	if err := validSet().Validate(); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}
}

func TestSetDefaultsAndTemplates(t *testing.T) {
	s := validSet()
	if s.Countdown() != puzzle.DefaultCountdown {
		t.Fatalf("expected default countdown, got %s", s.Countdown())
	}
	s.CountdownSeconds = 20
	if s.Countdown() != 20*time.Second {
		t.Fatalf("expected 20s, got %s", s.Countdown())
	}
	if got := s.ProgressText(3, 13); got != "Solved: 3 / 13" {
		t.Fatalf("unexpected progress text %q", got)
	}
	s.Messages.Question = "Câu {id}:"
	if got := s.QuestionLabel(7); got != "Câu 7:" {
		t.Fatalf("unexpected question label %q", got)
	}
	if got := s.InstructionText(45); got != "Pick a row number, then answer within 45s" {
		t.Fatalf("unexpected instruction %q", got)
	}
	s.Messages.Wrong = "nope"
	m := s.GameplayMessages()
	if m.Wrong != "nope" || m.Correct != puzzle.DefaultMessages().Correct {
		t.Fatalf("unexpected messages %+v", m)
	}
}

func TestKeywordMismatchDetected(t *testing.T) {
	s := validSet()
	s.Reward.Keyword = "vb"
	if _, _, mismatch := s.KeywordMismatch(); mismatch {
		t.Fatalf("expected VB to match the highlighted column")
	}
	s.Reward.Keyword = "XY"
	configured, spelled, mismatch := s.KeywordMismatch()
	if !mismatch || configured != "XY" || spelled != "VB" {
		t.Fatalf("expected mismatch, got %q %q %v", configured, spelled, mismatch)
	}
}
