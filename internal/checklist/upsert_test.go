package checklist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpsertLinkSectionAppends(t *testing.T) {
	body := "Fixes a bug.\n\n- [x] tested"
	got := UpsertLinkSection(body, "https://sheets.example/tab/1", "Checklist board")

	require.True(t, strings.HasPrefix(got, body))
	require.Contains(t, got, LinkMarker+"\n[Checklist board](https://sheets.example/tab/1)\n"+LinkMarker)
	require.Equal(t, 2, strings.Count(got, LinkMarker))
}

func TestUpsertLinkSectionReplacesExisting(t *testing.T) {
	body := "intro\n\n" + LinkMarker + "\n[old](https://old.example)\n" + LinkMarker + "\n\ntrailer"
	got := UpsertLinkSection(body, "https://new.example", "new")

	require.NotContains(t, got, "old.example")
	require.Contains(t, got, "[new](https://new.example)")
	require.Contains(t, got, "trailer")
	require.Equal(t, 2, strings.Count(got, LinkMarker))
}

func TestUpsertLinkSectionIdempotent(t *testing.T) {
	bodies := []string{
		"",
		"plain description",
		"already linked\n\n" + LinkMarker + "\n[x](https://x.example)\n" + LinkMarker,
	}
	for _, body := range bodies {
		once := UpsertLinkSection(body, "https://tab.example", "board")
		twice := UpsertLinkSection(once, "https://tab.example", "board")
		require.Equal(t, once, twice)
	}
}

func TestUpsertLinkSectionCompletesDanglingMarker(t *testing.T) {
	body := "intro\n" + LinkMarker + "\nrest"
	got := UpsertLinkSection(body, "https://tab.example", "board")

	require.Contains(t, got, "[board](https://tab.example)")
	require.Contains(t, got, "intro")
	require.Contains(t, got, "rest")
	require.Equal(t, 2, strings.Count(got, LinkMarker))

	again := UpsertLinkSection(got, "https://tab.example", "board")
	require.Equal(t, got, again)
}

func TestUpsertLinkSectionEmptyBody(t *testing.T) {
	got := UpsertLinkSection("", "https://tab.example", "board")
	require.Equal(t, LinkMarker+"\n[board](https://tab.example)\n"+LinkMarker, got)
}

func TestUpsertLinkSectionReplacesFirstOccurrenceOnly(t *testing.T) {
	section := LinkMarker + "\n[a](https://a)\n" + LinkMarker
	body := section + "\nmiddle\n" + section
	got := UpsertLinkSection(body, "https://b", "b")

	require.Contains(t, got, "[b](https://b)")
	require.Contains(t, got, "[a](https://a)")
	require.Contains(t, got, "middle")
}
