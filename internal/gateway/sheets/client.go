// Package sheets implements the grid destination against the Google Sheets
// REST API. Each write creates a fresh, uniquely named tab.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anies1212/pr-checklist-to-sheets/config"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"go.uber.org/zap"
)

// maxTabAttempts bounds date-suffix probing when tab names collide.
const maxTabAttempts = 20

// Client talks to the Sheets API for a single spreadsheet.
type Client struct {
	log           *zap.SugaredLogger
	http          *http.Client
	baseURL       string
	token         string
	spreadsheetID string
	now           func() time.Time
}

// New creates a Sheets client from configuration.
func New(log *zap.SugaredLogger, cfg config.SheetsConfig) *Client {
	return &Client{
		log:           log.Named("gateway.sheets"),
		http:          &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:       cfg.BaseURL,
		token:         cfg.Token,
		spreadsheetID: cfg.SpreadsheetID,
		now:           time.Now,
	}
}

// WriteGrid creates a date-named tab (suffixed on collision) and writes the
// grid starting at startCell. The tab is either fully written or the error
// is returned before any link step can run.
func (c *Client) WriteGrid(ctx context.Context, grid entities.Grid, startCell string) (*entities.Tab, error) {
	base := c.now().Format("2006-01-02")

	var tab *entities.Tab
	for attempt := 0; attempt < maxTabAttempts; attempt++ {
		name := base
		if attempt > 0 {
			name = fmt.Sprintf("%s-%d", base, attempt+1)
		}
		gid, conflict, err := c.addTab(ctx, name)
		if err != nil {
			return nil, err
		}
		if conflict {
			continue
		}
		tab = &entities.Tab{
			Name: name,
			GID:  gid,
			URL:  fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=%d", c.spreadsheetID, gid),
		}
		break
	}
	if tab == nil {
		return nil, fmt.Errorf("%w: no free tab name after %d attempts", entities.ErrDestination, maxTabAttempts)
	}

	if err := c.writeValues(ctx, tab.Name, startCell, grid); err != nil {
		return nil, err
	}
	c.log.Infow("grid written", "tab", tab.Name, "rows", grid.Height(), "columns", grid.Width())
	return tab, nil
}

type batchUpdateResponse struct {
	Replies []struct {
		AddSheet struct {
			Properties struct {
				SheetID int64 `json:"sheetId"`
			} `json:"properties"`
		} `json:"addSheet"`
	} `json:"replies"`
}

func (c *Client) addTab(ctx context.Context, name string) (int64, bool, error) {
	url := fmt.Sprintf("%s/v4/spreadsheets/%s:batchUpdate", c.baseURL, c.spreadsheetID)
	payload := map[string]any{
		"requests": []any{
			map[string]any{
				"addSheet": map[string]any{
					"properties": map[string]any{"title": name},
				},
			},
		},
	}

	var out batchUpdateResponse
	status, err := c.do(ctx, http.MethodPost, url, payload, &out)
	if status == http.StatusBadRequest && err != nil && strings.Contains(err.Error(), "already exists") {
		// The API rejects duplicate titles with 400 and says so in the
		// message; any other 400 is a real failure, not a collision.
		c.log.Debugw("tab name taken", "tab", name)
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}
	if len(out.Replies) == 0 {
		return 0, false, fmt.Errorf("%w: batchUpdate returned no reply", entities.ErrDestination)
	}
	return out.Replies[0].AddSheet.Properties.SheetID, false, nil
}

func (c *Client) writeValues(ctx context.Context, tabName, startCell string, grid entities.Grid) error {
	rng := fmt.Sprintf("%s!%s", tabName, startCell)
	url := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=USER_ENTERED", c.baseURL, c.spreadsheetID, rng)
	payload := map[string]any{
		"range":  rng,
		"values": grid,
	}
	_, err := c.do(ctx, http.MethodPut, url, payload, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) (int, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %v", entities.ErrDestination, method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, fmt.Errorf("%w: %s %s: status %d: %s", entities.ErrDestination, method, url, resp.StatusCode, snippet)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: decode response: %v", entities.ErrDestination, err)
		}
	}
	return resp.StatusCode, nil
}
