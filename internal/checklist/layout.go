package checklist

import (
	"fmt"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
)

const (
	// BlockWidth is the number of columns each participant owns in the
	// side-by-side layout.
	BlockWidth = 4
	// DataStartRow is the zero-based row index of the first data row; the
	// two header rows sit above it. Formulas referencing the data range
	// must use this constant.
	DataStartRow = 2
)

var (
	flatHeader  = []any{"PR", "Author", "Note"}
	blockHeader = []any{"Done", "PR", "Author", "Note"}
)

// FlatGrid lays aggregated entries out as a single three-column table with
// one header row.
func FlatGrid(entries []entities.ChecklistEntry) entities.Grid {
	grid := make(entities.Grid, 0, len(entries)+1)
	grid = append(grid, append([]any{}, flatHeader...))
	for _, e := range entries {
		grid = append(grid, []any{e.SourceURL, e.SourceAuthor, e.Note})
	}
	return grid
}

// SideBySideGrid lays the aggregate out as one fixed-width column block per
// roster participant: two header rows, then max(list length) data rows padded
// with empty cells so the grid stays rectangular.
//
// For the plain scheme every participant is broadcast the same shared entry
// list; each block's completion indicator is an AND formula over that block's
// checkbox column within the data range. For the fenced scheme each block
// holds the participant's own list and the indicator is a literal done/total
// ratio computed from parsed state.
func SideBySideGrid(roster []entities.Participant, agg entities.AggregatedChecklist, scheme entities.MarkupScheme) entities.Grid {
	longest := agg.Longest()
	width := len(roster) * BlockWidth

	grid := make(entities.Grid, 0, longest+DataStartRow)
	labelRow := make([]any, 0, width)
	headerRow := make([]any, 0, width)
	for i, p := range roster {
		list := agg.Entries
		if agg.PerParticipant != nil {
			list = agg.PerParticipant[p.ID]
		}
		labelRow = append(labelRow, p.DisplayLabel(), completionIndicator(i, list, longest, scheme), "", "")
		headerRow = append(headerRow, blockHeader...)
	}
	grid = append(grid, labelRow, headerRow)

	for row := 0; row < longest; row++ {
		cells := make([]any, 0, width)
		for _, p := range roster {
			list := agg.Entries
			if agg.PerParticipant != nil {
				list = agg.PerParticipant[p.ID]
			}
			if row >= len(list) {
				cells = append(cells, "", "", "", "")
				continue
			}
			e := list[row]
			done := false
			if e.Done != nil {
				done = *e.Done
			}
			cells = append(cells, done, e.SourceURL, e.SourceAuthor, e.Note)
		}
		grid = append(grid, cells)
	}
	return grid
}

// completionIndicator derives the header cell next to a participant's label.
func completionIndicator(blockIndex int, list []entities.ChecklistEntry, longest int, scheme entities.MarkupScheme) any {
	if longest == 0 {
		return ""
	}
	if scheme == entities.SchemePerParticipantFence {
		done := 0
		for _, e := range list {
			if e.Done != nil && *e.Done {
				done++
			}
		}
		return fmt.Sprintf("%d/%d", done, len(list))
	}
	// The checkbox column for block p sits at absolute column p*BlockWidth.
	col := ColumnLabel(blockIndex * BlockWidth)
	first := DataStartRow + 1
	last := DataStartRow + longest
	return fmt.Sprintf("=AND(%s%d:%s%d)", col, first, col, last)
}
