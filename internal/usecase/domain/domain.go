package domain

import (
	"context"
	"time"

	"github.com/anies1212/pr-checklist-to-sheets/internal/checklist"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
	"github.com/anies1212/pr-checklist-to-sheets/internal/gateway"
	"github.com/anies1212/pr-checklist-to-sheets/internal/repository"

	"go.uber.org/zap"
)

// Deps bundles the collaborators and tuning of the usecase layer.
type Deps struct {
	Repo        repository.Repository
	History     gateway.HistoryProvider
	Destination gateway.GridDestination

	Roster      []entities.Participant
	Scheme      entities.MarkupScheme
	Markers     checklist.MarkerPair
	FencePrefix string

	FetchWindow int
	LinkEnabled bool
	LinkLabel   string
	StartCell   string
	Timeout     time.Duration
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx  context.Context
	log  *zap.SugaredLogger
	deps Deps
	agg  *checklist.Aggregator
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, deps Deps) *Usecase {
	return &Usecase{
		ctx:  ctx,
		log:  log,
		deps: deps,
		agg:  checklist.NewAggregator(log, deps.Scheme, deps.Markers, deps.FencePrefix, deps.Roster),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
