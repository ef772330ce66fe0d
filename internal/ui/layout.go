package ui

// DetermineLayoutMode picks the board arrangement for a terminal size. Wide
// puts the side panel next to the grid, medium stacks it underneath.
func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < 60 || rows < 20 {
		return LayoutTooSmall
	}
	if cols >= 100 && rows >= 24 {
		return LayoutWide
	}
	if rows < 30 {
		return LayoutTooSmall
	}
	return LayoutMedium
}
