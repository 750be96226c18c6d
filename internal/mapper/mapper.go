// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"github.com/anies1212/pr-checklist-to-sheets/internal/api"
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
)

// ToAPIRun maps entities.Run to transport model.
func ToAPIRun(run entities.Run) api.Run {
	out := api.Run{
		ID:               run.ID,
		PullRequestNum:   run.PRNumber,
		TabName:          run.TabName,
		SheetURL:         run.SheetURL,
		Scheme:           string(run.Scheme),
		EntryCount:       run.EntryCount,
		ParticipantCount: run.ParticipantCount,
		Status:           string(run.Status),
	}
	if run.CreatedAt != nil {
		out.CreatedAt = run.CreatedAt.UTC().Format(time.RFC3339)
	}
	for _, p := range run.Participants {
		out.Participants = append(out.Participants, api.RunParticipant{
			ParticipantID: p.ParticipantID,
			EntryCount:    p.EntryCount,
			DoneCount:     p.DoneCount,
		})
	}
	return out
}

// ToAPIRuns maps a run slice to transport models.
func ToAPIRuns(runs []entities.Run) []api.Run {
	out := make([]api.Run, 0, len(runs))
	for _, r := range runs {
		out = append(out, ToAPIRun(r))
	}
	return out
}

// ToAPISyncResponse maps entities.SyncResult to transport model.
func ToAPISyncResponse(res entities.SyncResult) api.SyncResponse {
	out := api.SyncResponse{
		Skipped:    res.Skipped,
		EntryCount: res.EntryCount,
	}
	if res.Tab != nil {
		out.TabName = res.Tab.Name
		out.SheetURL = res.Tab.URL
	}
	if res.Run != nil {
		out.RunID = res.Run.ID
	}
	return out
}

// ToAPIStats maps entities.RunStats to transport model.
func ToAPIStats(stats entities.RunStats) api.Stats {
	out := api.Stats{
		Runs:          stats.Runs,
		Skipped:       stats.Skipped,
		Entries:       stats.Entries,
		ByParticipant: make([]api.ParticipantStat, 0, len(stats.ByParticipant)),
	}
	for _, p := range stats.ByParticipant {
		out.ByParticipant = append(out.ByParticipant, api.ParticipantStat{
			ParticipantID: p.ParticipantID,
			EntryCount:    p.EntryCount,
			DoneCount:     p.DoneCount,
		})
	}
	return out
}
