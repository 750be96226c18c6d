// Package entities contains core business entities.
package entities

// Grid is a rectangular block of cell values ready for a spreadsheet write.
// Cells are strings, bools, or empty strings; every row has the same width.
type Grid [][]any

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the row width, 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Tab identifies a freshly created destination tab.
type Tab struct {
	Name string
	URL  string
	GID  int64
}
