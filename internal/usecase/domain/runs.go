package domain

import (
	"context"
	"fmt"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
)

// Runs returns recent runs, newest first.
func (u *Usecase) Runs(ctx context.Context, limit int) ([]entities.Run, error) {
	ctx, cancel := withTimeout(ctx, u.deps.Timeout)
	defer cancel()

	if limit <= 0 {
		limit = 20
	}
	return u.deps.Repo.Runs(ctx, limit)
}

// Run returns one run with per-participant counters.
func (u *Usecase) Run(ctx context.Context, id int64) (*entities.Run, error) {
	ctx, cancel := withTimeout(ctx, u.deps.Timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: run id is required", entities.ErrInvalidArgument)
	}
	return u.deps.Repo.Run(ctx, id)
}

// RunStats returns totals across all recorded runs.
func (u *Usecase) RunStats(ctx context.Context) (entities.RunStats, error) {
	ctx, cancel := withTimeout(ctx, u.deps.Timeout)
	defer cancel()
	return u.deps.Repo.RunStats(ctx)
}
