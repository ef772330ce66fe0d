package puzzle

import (
	"errors"
	"testing"
)

func cyberEntries() []Entry {
	return []Entry{
		{ID: 1, Question: "q1", Answer: "ENCRYPTION", Highlight: 3},
		{ID: 2, Question: "q2", Answer: "POLICY", Highlight: 6},
		{ID: 3, Question: "q3", Answer: "BROWSER", Highlight: 1},
		{ID: 4, Question: "q4", Answer: "INTEGRITY", Highlight: 4},
		{ID: 5, Question: "q5", Answer: "RANSOMWARE", Highlight: 1},
		{ID: 6, Question: "q6", Answer: "PHISHING", Highlight: 4},
		{ID: 7, Question: "q7", Answer: "MALWARE", Highlight: 7},
		{ID: 8, Question: "q8", Answer: "CRYPTOGRAPHY", Highlight: 1},
		{ID: 9, Question: "q9", Answer: "BACKUP", Highlight: 5},
		{ID: 10, Question: "q10", Answer: "FIREWALL", Highlight: 3},
		{ID: 11, Question: "q11", Answer: "VIRUS", Highlight: 2},
		{ID: 12, Question: "q12", Answer: "AUTHENTICATION", Highlight: 3},
		{ID: 13, Question: "q13", Answer: "SPYWARE", Highlight: 3},
	}
}

func TestComputeGeometryBuiltinLayout(t *testing.T) {
	g, err := ComputeGeometry(cyberEntries())
	if err != nil {
		t.Fatalf("compute geometry: %v", err)
	}
	if g.CenterColumn != 7 || g.TotalColumns != 19 {
		t.Fatalf("expected center=7 total=19, got %+v", g)
	}
}

func TestComputeGeometrySharedColumnAndBounds(t *testing.T) {
	cases := map[string][]Entry{
		"builtin": cyberEntries(),
		"needs shift": {
			{ID: 1, Answer: "AB", Highlight: 2},
			{ID: 2, Answer: "ABCDEFGH", Highlight: 8},
		},
		"single": {{ID: 1, Answer: "X", Highlight: 1}},
		"first letters": {
			{ID: 1, Answer: "LONGERWORD", Highlight: 1},
			{ID: 2, Answer: "AB", Highlight: 1},
		},
	}
	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := ComputeGeometry(entries)
			if err != nil {
				t.Fatalf("compute geometry: %v", err)
			}
			for _, e := range entries {
				start := g.Start(e)
				if start < 0 {
					t.Fatalf("entry %d starts left of the grid: %d", e.ID, start)
				}
				if start+e.Length() > g.TotalColumns {
					t.Fatalf("entry %d overflows: start=%d len=%d total=%d", e.ID, start, e.Length(), g.TotalColumns)
				}
				if start+e.Highlight-1 != g.CenterColumn {
					t.Fatalf("entry %d highlight at %d, center %d", e.ID, start+e.Highlight-1, g.CenterColumn)
				}
				if !g.Contains(e, g.CenterColumn) {
					t.Fatalf("entry %d does not cover the center column", e.ID)
				}
			}
		})
	}
}

func TestComputeGeometryShiftsRight(t *testing.T) {
	g, err := ComputeGeometry([]Entry{
		{ID: 1, Answer: "AB", Highlight: 2},
		{ID: 2, Answer: "ABCDEFGH", Highlight: 8},
	})
	if err != nil {
		t.Fatalf("compute geometry: %v", err)
	}
	if g.CenterColumn != 7 || g.TotalColumns != 8 {
		t.Fatalf("expected center=7 total=8, got %+v", g)
	}
}

func TestComputeGeometryRejectsBadConfiguration(t *testing.T) {
	if _, err := ComputeGeometry(nil); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}

	_, err := ComputeGeometry([]Entry{{ID: 1, Answer: "VIRUS", Highlight: 6}})
	if !errors.Is(err, ErrHighlightOutOfRange) {
		t.Fatalf("expected ErrHighlightOutOfRange, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.EntryID != 1 {
		t.Fatalf("expected ConfigError for entry 1, got %#v", err)
	}

	if _, err := ComputeGeometry([]Entry{{ID: 1, Answer: "VIRUS", Highlight: 0}}); !errors.Is(err, ErrHighlightOutOfRange) {
		t.Fatalf("expected zero highlight to be rejected, got %v", err)
	}
}

func TestValidateEntriesRejectsDuplicatesAndBlankAnswers(t *testing.T) {
	dup := []Entry{{ID: 1, Answer: "A", Highlight: 1}, {ID: 1, Answer: "B", Highlight: 1}}
	if err := ValidateEntries(dup); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
	blank := []Entry{{ID: 1, Answer: "  ", Highlight: 1}}
	if err := ValidateEntries(blank); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected blank answer error, got %v", err)
	}
	digits := []Entry{{ID: 1, Answer: "MP3", Highlight: 1}}
	if err := ValidateEntries(digits); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected non-letter answer error, got %v", err)
	}
	if err := ValidateEntries([]Entry{{ID: 1, Answer: "virus", Highlight: 2}}); err != nil {
		t.Fatalf("lowercase answers should normalize: %v", err)
	}
}

func TestKeywordSpellsHighlightedColumn(t *testing.T) {
	if got := Keyword(cyberEntries()); got != "CYBERSECURITY" {
		t.Fatalf("expected CYBERSECURITY, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  virus ":   "VIRUS",
		"EnCrypTion": "ENCRYPTION",
		"fire-wall":  "FIREWALL",
		"   ":        "",
		"mp3":        "MP",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
