package checklist

import (
	"testing"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestFlatGrid(t *testing.T) {
	entries := []entities.ChecklistEntry{
		{Note: "item one", SourceURL: "https://example.com/pr/1", SourceAuthor: "alice"},
		{Note: "item two", SourceURL: "https://example.com/pr/2", SourceAuthor: "bob"},
	}

	grid := FlatGrid(entries)
	require.Equal(t, 3, grid.Height())
	require.Equal(t, 3, grid.Width())
	require.Equal(t, []any{"PR", "Author", "Note"}, grid[0])
	require.Equal(t, []any{"https://example.com/pr/1", "alice", "item one"}, grid[1])
	require.Equal(t, []any{"https://example.com/pr/2", "bob", "item two"}, grid[2])
}

func TestFlatGridEmpty(t *testing.T) {
	grid := FlatGrid(nil)
	require.Equal(t, 1, grid.Height())
	require.Equal(t, 3, grid.Width())
}

func TestSideBySideGridBroadcast(t *testing.T) {
	roster := []entities.Participant{{ID: "alice", Label: "Alice"}, {ID: "bob", Label: "Bob"}}
	agg := entities.AggregatedChecklist{Entries: []entities.ChecklistEntry{
		{Note: "one", SourceURL: "u1", SourceAuthor: "a1"},
		{Note: "two", SourceURL: "u2", SourceAuthor: "a2"},
		{Note: "three", SourceURL: "u3", SourceAuthor: "a3"},
	}}

	grid := SideBySideGrid(roster, agg, entities.SchemePlain)

	// 2 header rows + 3 data rows, 2 participants x 4 columns.
	require.Equal(t, 5, grid.Height())
	for _, row := range grid {
		require.Len(t, row, 8)
	}

	require.Equal(t, "Alice", grid[0][0])
	require.Equal(t, "Bob", grid[0][4])

	// Checkbox columns sit at absolute indices 0 and 4; the completion
	// formula for each block references its own column over the data range.
	require.Equal(t, "=AND(A3:A5)", grid[0][1])
	require.Equal(t, "=AND(E3:E5)", grid[0][5])

	require.Equal(t, []any{"Done", "PR", "Author", "Note"}, grid[1][:4])
	require.Equal(t, []any{"Done", "PR", "Author", "Note"}, grid[1][4:])

	// Both blocks carry the same shared list with unchecked placeholders.
	require.Equal(t, []any{false, "u1", "a1", "one"}, grid[2][:4])
	require.Equal(t, []any{false, "u1", "a1", "one"}, grid[2][4:])
	require.Equal(t, []any{false, "u3", "a3", "three"}, grid[4][:4])
}

func TestSideBySideGridPerParticipant(t *testing.T) {
	roster := []entities.Participant{{ID: "alice"}, {ID: "bob"}}
	agg := entities.AggregatedChecklist{PerParticipant: map[string][]entities.ChecklistEntry{
		"alice": {
			{Note: "done thing", Done: boolPtr(true), SourceURL: "u1", SourceAuthor: "alice"},
			{Note: "pending thing", Done: boolPtr(false), SourceURL: "u1", SourceAuthor: "alice"},
		},
		"bob": {
			{Note: "solo", Done: boolPtr(true), SourceURL: "u2", SourceAuthor: "bob"},
		},
	}}

	grid := SideBySideGrid(roster, agg, entities.SchemePerParticipantFence)

	require.Equal(t, 4, grid.Height())
	for _, row := range grid {
		require.Len(t, row, 8)
	}

	// Label falls back to the id; the indicator is a literal done/total ratio.
	require.Equal(t, "alice", grid[0][0])
	require.Equal(t, "1/2", grid[0][1])
	require.Equal(t, "bob", grid[0][4])
	require.Equal(t, "1/1", grid[0][5])

	require.Equal(t, []any{true, "u1", "alice", "done thing"}, grid[2][:4])
	require.Equal(t, []any{false, "u1", "alice", "pending thing"}, grid[3][:4])

	// Bob's shorter list is padded with empty cells, never omitted.
	require.Equal(t, []any{true, "u2", "bob", "solo"}, grid[2][4:])
	require.Equal(t, []any{"", "", "", ""}, grid[3][4:])
}

func TestSideBySideGridRectangularity(t *testing.T) {
	roster := []entities.Participant{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	agg := entities.AggregatedChecklist{PerParticipant: map[string][]entities.ChecklistEntry{
		"a": make([]entities.ChecklistEntry, 5),
		"b": {},
		"c": make([]entities.ChecklistEntry, 2),
	}}

	grid := SideBySideGrid(roster, agg, entities.SchemePerParticipantFence)
	require.Equal(t, 5+2, grid.Height())
	for _, row := range grid {
		require.Len(t, row, 3*BlockWidth)
	}
}

func TestSideBySideGridNoEntries(t *testing.T) {
	roster := []entities.Participant{{ID: "a"}}
	grid := SideBySideGrid(roster, entities.AggregatedChecklist{}, entities.SchemePlain)
	require.Equal(t, 2, grid.Height())
	require.Equal(t, "", grid[0][1])
}
