// Package domain contains application services orchestrating the checklist
// sync pipeline.
package domain

import (
	"context"
	"fmt"

	"github.com/anies1212/pr-checklist-to-sheets/internal/checklist"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Sync runs the full pipeline for one pull request: fetch history, aggregate
// checklist entries, lay out the grid, write a fresh tab and link it back.
// An empty aggregate stops the run before any destination contact; that is a
// success, not a failure.
func (u *Usecase) Sync(ctx context.Context, req entities.SyncRequest) (*entities.SyncResult, error) {
	ctx, cancel := withTimeout(ctx, u.deps.Timeout)
	defer cancel()

	if req.PRNumber <= 0 {
		return nil, fmt.Errorf("%w: pull_request_number is required", entities.ErrInvalidArgument)
	}
	if u.deps.Scheme == entities.SchemePerParticipantFence && len(u.deps.Roster) == 0 {
		return nil, entities.ErrRosterEmpty
	}

	numbers, err := u.deps.History.MergedSince(ctx, req.SinceRef)
	if err != nil {
		return nil, err
	}
	docs, err := u.fetchDocuments(ctx, numbers)
	if err != nil {
		return nil, err
	}
	active, err := u.deps.History.PullRequest(ctx, req.PRNumber)
	if err != nil {
		return nil, err
	}

	agg := u.agg.Aggregate(docs, *active)
	if agg.Empty() {
		u.log.Infow("no checklist entries found, skipping run", "pr_number", req.PRNumber)
		run := u.recordRun(ctx, req, agg, nil)
		return &entities.SyncResult{Skipped: true, Run: run}, nil
	}

	var grid entities.Grid
	if len(u.deps.Roster) == 0 {
		grid = checklist.FlatGrid(agg.Entries)
	} else {
		grid = checklist.SideBySideGrid(u.deps.Roster, agg, u.deps.Scheme)
	}

	tab, err := u.deps.Destination.WriteGrid(ctx, grid, u.deps.StartCell)
	if err != nil {
		return nil, err
	}

	if u.deps.LinkEnabled {
		updated := checklist.UpsertLinkSection(active.Body, tab.URL, u.deps.LinkLabel)
		if updated != active.Body {
			if err := u.deps.History.ReplaceBody(ctx, req.PRNumber, updated); err != nil {
				return nil, err
			}
		}
	}

	run := u.recordRun(ctx, req, agg, tab)
	u.log.Infow("sync complete", "pr_number", req.PRNumber, "tab", tab.Name, "entries", agg.Total())
	return &entities.SyncResult{EntryCount: agg.Total(), Tab: tab, Run: run}, nil
}

// fetchDocuments fetches pull requests with a bounded in-flight window.
// Results land in a pre-sized slice by index, so the degree of parallelism
// never reorders them.
func (u *Usecase) fetchDocuments(ctx context.Context, numbers []int) ([]entities.ChecklistDocument, error) {
	docs := make([]entities.ChecklistDocument, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.deps.FetchWindow)
	for i, number := range numbers {
		i, number := i, number
		g.Go(func() error {
			doc, err := u.deps.History.PullRequest(gctx, number)
			if err != nil {
				return err
			}
			docs[i] = *doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// recordRun persists the run outcome. History recording is supplementary:
// a failure here is logged and the run still succeeds.
func (u *Usecase) recordRun(ctx context.Context, req entities.SyncRequest, agg entities.AggregatedChecklist, tab *entities.Tab) *entities.Run {
	run := entities.Run{
		PRNumber:         req.PRNumber,
		Scheme:           u.deps.Scheme,
		EntryCount:       agg.Total(),
		ParticipantCount: len(u.deps.Roster),
		Status:           entities.RunStatusDone,
	}
	if tab == nil {
		run.Status = entities.RunStatusSkipped
	} else {
		run.TabName = tab.Name
		run.SheetURL = tab.URL
	}
	for _, p := range u.deps.Roster {
		list := agg.Entries
		if agg.PerParticipant != nil {
			list = agg.PerParticipant[p.ID]
		}
		done := 0
		for _, e := range list {
			if e.Done != nil && *e.Done {
				done++
			}
		}
		run.Participants = append(run.Participants, entities.RunParticipant{
			ParticipantID: p.ID,
			EntryCount:    len(list),
			DoneCount:     done,
		})
	}

	recorded, err := u.deps.Repo.RecordRun(ctx, run)
	if err != nil {
		u.log.Warnw("failed to record run history", "error", err, "pr_number", req.PRNumber)
		return &run
	}
	return recorded
}
