package puzzle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Entry struct {
	ID        int
	Question  string
	Answer    string
	Highlight int
}

// Length is the answer length in letters, ignoring surrounding whitespace
// and case.
func (e Entry) Length() int {
	return utf8.RuneCountInString(Normalize(e.Answer))
}

// HighlightLetter returns the answer letter that sits on the shared column.
func (e Entry) HighlightLetter() rune {
	runes := []rune(Normalize(e.Answer))
	if e.Highlight < 1 || e.Highlight > len(runes) {
		return 0
	}
	return runes[e.Highlight-1]
}

// ValidateEntries checks the invariants every entry list must satisfy before a
// geometry or a session can be built from it.
func ValidateEntries(entries []Entry) error {
	if len(entries) == 0 {
		return &ConfigError{Err: ErrNoEntries}
	}
	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if e.ID <= 0 {
			return &ConfigError{EntryID: e.ID, Err: ErrInvalidEntry, Detail: "id must be positive"}
		}
		if _, ok := seen[e.ID]; ok {
			return &ConfigError{EntryID: e.ID, Err: ErrInvalidEntry, Detail: "duplicate id"}
		}
		seen[e.ID] = struct{}{}
		if Normalize(e.Answer) == "" {
			return &ConfigError{EntryID: e.ID, Err: ErrInvalidEntry, Detail: "answer is empty"}
		}
		if Normalize(e.Answer) != strings.ToUpper(strings.TrimSpace(e.Answer)) {
			return &ConfigError{EntryID: e.ID, Err: ErrInvalidEntry, Detail: fmt.Sprintf("answer %q must contain letters only", e.Answer)}
		}
		if e.Highlight < 1 || e.Highlight > e.Length() {
			return &ConfigError{
				EntryID: e.ID,
				Err:     ErrHighlightOutOfRange,
				Detail:  fmt.Sprintf("highlight %d, answer length %d", e.Highlight, e.Length()),
			}
		}
	}
	return nil
}

// Keyword spells the highlighted letters of every entry in list order.
func Keyword(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		if r := e.HighlightLetter(); r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize uppercases s and keeps letters only.
func Normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
