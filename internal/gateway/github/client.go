// Package github implements the pull-request history provider against the
// GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/anies1212/pr-checklist-to-sheets/config"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"go.uber.org/zap"
)

// Client talks to the GitHub REST API for a single repository.
type Client struct {
	log     *zap.SugaredLogger
	http    *http.Client
	baseURL string
	token   string
	owner   string
	repo    string
}

// New creates a GitHub client from configuration.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig) *Client {
	return &Client{
		log:     log.Named("gateway.github"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		owner:   cfg.Owner,
		repo:    cfg.Repo,
	}
}

// perPage is the GitHub list endpoint maximum.
const perPage = 100

type pullResponse struct {
	Number    int        `json:"number"`
	Body      string     `json:"body"`
	HTMLURL   string     `json:"html_url"`
	MergedAt  *time.Time `json:"merged_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	User      struct {
		Login string `json:"login"`
	} `json:"user"`
}

// MergedSince lists numbers of pull requests merged after ref (an RFC 3339
// timestamp; empty means no lower bound), oldest merge first.
func (c *Client) MergedSince(ctx context.Context, ref string) ([]int, error) {
	var since *time.Time
	if ref != "" {
		t, err := time.Parse(time.RFC3339, ref)
		if err != nil {
			return nil, fmt.Errorf("%w: parse since ref %q: %v", entities.ErrInvalidArgument, ref, err)
		}
		since = &t
	}

	pulls, err := c.listClosedPulls(ctx, since)
	if err != nil {
		return nil, err
	}

	merged := make([]pullResponse, 0, len(pulls))
	for _, p := range pulls {
		if p.MergedAt == nil {
			continue
		}
		if since != nil && p.MergedAt.Before(*since) {
			continue
		}
		merged = append(merged, p)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].MergedAt.Before(*merged[j].MergedAt)
	})

	numbers := make([]int, 0, len(merged))
	for _, p := range merged {
		numbers = append(numbers, p.Number)
	}
	c.log.Infow("listed merged pull requests", "since", ref, "count", len(numbers))
	return numbers, nil
}

// listClosedPulls pages through the closed-PR listing, newest update first.
// Paging stops once a full page's oldest update predates since; everything
// merged after since has been seen by then.
func (c *Client) listClosedPulls(ctx context.Context, since *time.Time) ([]pullResponse, error) {
	all := make([]pullResponse, 0, perPage)
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/repos/%s/%s/pulls?state=closed&sort=updated&direction=desc&per_page=%d&page=%d",
			c.baseURL, c.owner, c.repo, perPage, page)

		var pulls []pullResponse
		if err := c.do(ctx, http.MethodGet, url, nil, &pulls); err != nil {
			return nil, err
		}
		all = append(all, pulls...)

		if len(pulls) < perPage {
			return all, nil
		}
		if since != nil {
			oldest := pulls[len(pulls)-1].UpdatedAt
			if oldest != nil && oldest.Before(*since) {
				return all, nil
			}
		}
	}
}

// PullRequest fetches one pull request as a checklist document.
func (c *Client) PullRequest(ctx context.Context, number int) (*entities.ChecklistDocument, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d", c.baseURL, c.owner, c.repo, number)

	var p pullResponse
	if err := c.do(ctx, http.MethodGet, url, nil, &p); err != nil {
		return nil, err
	}
	return &entities.ChecklistDocument{
		Number: p.Number,
		URL:    p.HTMLURL,
		Author: p.User.Login,
		Body:   p.Body,
	}, nil
}

// ReplaceBody overwrites the body of a pull request.
func (c *Client) ReplaceBody(ctx context.Context, number int, body string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d", c.baseURL, c.owner, c.repo, number)
	payload := map[string]string{"body": body}
	if err := c.do(ctx, http.MethodPatch, url, payload, nil); err != nil {
		return err
	}
	c.log.Infow("pull request body updated", "number", number)
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", entities.ErrSourceHost, method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: status %d: %s", entities.ErrSourceHost, method, url, resp.StatusCode, snippet)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", entities.ErrSourceHost, err)
	}
	return nil
}
