// Package gateway contains interfaces for outbound collaborators: the
// pull-request host and the spreadsheet destination.
package gateway

import (
	"context"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
)

// HistoryProvider exposes the pull-request history of the repository.
type HistoryProvider interface {
	// MergedSince returns the numbers of pull requests merged after the
	// caller-supplied reference point, in merge order.
	MergedSince(ctx context.Context, ref string) ([]int, error)
	// PullRequest fetches one pull request as a checklist document.
	PullRequest(ctx context.Context, number int) (*entities.ChecklistDocument, error)
	// ReplaceBody overwrites the body of a pull request.
	ReplaceBody(ctx context.Context, number int, body string) error
}

// GridDestination can create a uniquely named tab and write a grid into it.
type GridDestination interface {
	WriteGrid(ctx context.Context, grid entities.Grid, startCell string) (*entities.Tab, error)
}
