package puzzle

// Geometry places every answer so that its highlighted letter lands on
// CenterColumn. Columns are zero-based; TotalColumns is the grid width.
type Geometry struct {
	CenterColumn int
	TotalColumns int
}

func ComputeGeometry(entries []Entry) (Geometry, error) {
	if err := ValidateEntries(entries); err != nil {
		return Geometry{}, err
	}

	maxLen := 0
	for _, e := range entries {
		maxLen = max(maxLen, e.Length())
	}
	center := maxLen / 2

	minStart := center - (entries[0].Highlight - 1)
	for _, e := range entries[1:] {
		minStart = min(minStart, center-(e.Highlight-1))
	}
	if minStart < 0 {
		center += -minStart
	}

	g := Geometry{CenterColumn: center}
	for _, e := range entries {
		g.TotalColumns = max(g.TotalColumns, g.Start(e)+e.Length())
	}
	return g, nil
}

// Start is the first column occupied by e.
func (g Geometry) Start(e Entry) int {
	return g.CenterColumn - (e.Highlight - 1)
}

// Contains reports whether column col falls inside e's answer.
func (g Geometry) Contains(e Entry, col int) bool {
	start := g.Start(e)
	return col >= start && col < start+e.Length()
}
