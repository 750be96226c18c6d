package postgres

import (
	"context"
	"fmt"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"
)

const (
	runTotalsQuery = `
SELECT count(*)                                          AS runs,
       count(*) FILTER (WHERE status = 'SKIPPED')        AS skipped,
       COALESCE(sum(entry_count), 0)                     AS entries
FROM runs`

	participantTotalsQuery = `
SELECT participant_id,
       COALESCE(sum(entry_count), 0) AS entry_count,
       COALESCE(sum(done_count), 0)  AS done_count
FROM run_participants
GROUP BY participant_id
ORDER BY entry_count DESC, participant_id`
)

// RunStats aggregates counters across all recorded runs.
func (p *Postgres) RunStats(ctx context.Context) (entities.RunStats, error) {
	var stats entities.RunStats
	if err := p.db.QueryRow(ctx, runTotalsQuery).Scan(&stats.Runs, &stats.Skipped, &stats.Entries); err != nil {
		p.log.Errorw("failed to aggregate run totals", "error", err)
		return entities.RunStats{}, fmt.Errorf("run totals: %w", err)
	}

	rows, err := p.db.Query(ctx, participantTotalsQuery)
	if err != nil {
		return entities.RunStats{}, fmt.Errorf("participant totals: %w", err)
	}
	defer rows.Close()

	stats.ByParticipant = make([]entities.ParticipantStat, 0)
	for rows.Next() {
		var ps entities.ParticipantStat
		if err := rows.Scan(&ps.ParticipantID, &ps.EntryCount, &ps.DoneCount); err != nil {
			return entities.RunStats{}, fmt.Errorf("scan participant totals: %w", err)
		}
		stats.ByParticipant = append(stats.ByParticipant, ps)
	}
	if err := rows.Err(); err != nil {
		return entities.RunStats{}, fmt.Errorf("iterate participant totals: %w", err)
	}

	return stats, nil
}
