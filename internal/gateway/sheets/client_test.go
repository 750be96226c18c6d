package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anies1212/pr-checklist-to-sheets/config"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(zap.NewNop().Sugar(), config.SheetsConfig{
		BaseURL:        srv.URL,
		Token:          "tok",
		SpreadsheetID:  "spread-1",
		RequestTimeout: 5 * time.Second,
	})
	c.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return c
}

func addSheetReply(gid int64) map[string]any {
	return map[string]any{
		"replies": []any{
			map[string]any{
				"addSheet": map[string]any{
					"properties": map[string]any{"sheetId": gid},
				},
			},
		},
	}
}

func requestedTitle(t *testing.T, r *http.Request) string {
	t.Helper()
	var body struct {
		Requests []struct {
			AddSheet struct {
				Properties struct {
					Title string `json:"title"`
				} `json:"properties"`
			} `json:"addSheet"`
		} `json:"requests"`
	}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	require.Len(t, body.Requests, 1)
	return body.Requests[0].AddSheet.Properties.Title
}

func TestWriteGrid(t *testing.T) {
	var wroteRange string
	var wroteValues [][]any

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			require.Equal(t, "2024-03-15", requestedTitle(t, r))
			_ = json.NewEncoder(w).Encode(addSheetReply(99))
		case strings.Contains(r.URL.Path, "/values/"):
			require.Equal(t, http.MethodPut, r.Method)
			var body struct {
				Range  string  `json:"range"`
				Values [][]any `json:"values"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			wroteRange = body.Range
			wroteValues = body.Values
			_, _ = w.Write([]byte("{}"))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	grid := entities.Grid{{"PR", "Author", "Note"}, {"u", "a", "n"}}
	tab, err := c.WriteGrid(context.Background(), grid, "A1")
	require.NoError(t, err)
	require.Equal(t, "2024-03-15", tab.Name)
	require.Equal(t, int64(99), tab.GID)
	require.Contains(t, tab.URL, "spread-1")
	require.Contains(t, tab.URL, "gid=99")

	require.Equal(t, "2024-03-15!A1", wroteRange)
	require.Len(t, wroteValues, 2)
}

func TestWriteGridSuffixesOnCollision(t *testing.T) {
	attempts := make([]string, 0, 3)
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			title := requestedTitle(t, r)
			attempts = append(attempts, title)
			if len(attempts) < 3 {
				http.Error(w, fmt.Sprintf("sheet %q already exists", title), http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(addSheetReply(7))
		default:
			_, _ = w.Write([]byte("{}"))
		}
	}))

	tab, err := c.WriteGrid(context.Background(), entities.Grid{{"x"}}, "A1")
	require.NoError(t, err)
	require.Equal(t, []string{"2024-03-15", "2024-03-15-2", "2024-03-15-3"}, attempts)
	require.Equal(t, "2024-03-15-3", tab.Name)
}

func TestWriteGridBadRequestIsNotACollision(t *testing.T) {
	var attempts int
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		http.Error(w, "invalid requests[0].addSheet", http.StatusBadRequest)
	}))

	_, err := c.WriteGrid(context.Background(), entities.Grid{{"x"}}, "A1")
	require.ErrorIs(t, err, entities.ErrDestination)
	require.Contains(t, err.Error(), "invalid requests")
	require.Equal(t, 1, attempts) // a malformed request must not burn suffix probes
}

func TestWriteGridServerError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := c.WriteGrid(context.Background(), entities.Grid{{"x"}}, "A1")
	require.ErrorIs(t, err, entities.ErrDestination)
}

func TestWriteGridGivesUpAfterMaxAttempts(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "already exists", http.StatusBadRequest)
	}))

	_, err := c.WriteGrid(context.Background(), entities.Grid{{"x"}}, "A1")
	require.ErrorIs(t, err, entities.ErrDestination)
}
