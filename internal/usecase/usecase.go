package usecase

import (
	"context"

	"github.com/anies1212/pr-checklist-to-sheets/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	SyncUsecaseInterface
	RunUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, deps domain.Deps) InterfaceUsecase {
	return domain.New(log, ctx, deps)
}
