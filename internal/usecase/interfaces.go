package usecase

import (
	"context"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
)

// SyncUsecaseInterface abstracts the checklist sync pipeline for delivery layer.
type SyncUsecaseInterface interface {
	Sync(ctx context.Context, req entities.SyncRequest) (*entities.SyncResult, error)
}

// RunUsecaseInterface abstracts run-history operations.
type RunUsecaseInterface interface {
	Runs(ctx context.Context, limit int) ([]entities.Run, error)
	Run(ctx context.Context, id int64) (*entities.Run, error)
	RunStats(ctx context.Context) (entities.RunStats, error)
}
