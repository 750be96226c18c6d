// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RunInterface exposes run-history operations.
type RunInterface interface {
	RecordRun(ctx context.Context, run entities.Run) (*entities.Run, error)
	Runs(ctx context.Context, limit int) ([]entities.Run, error)
	Run(ctx context.Context, id int64) (*entities.Run, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	RunStats(ctx context.Context) (entities.RunStats, error)
}
