package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertRunQuery = `
INSERT INTO runs (pr_number, tab_name, sheet_url, scheme, entry_count, participant_count, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	insertRunParticipantQuery = `
INSERT INTO run_participants (run_id, participant_id, entry_count, done_count)
VALUES ($1, $2, $3, $4)`

	listRunsQuery = `
SELECT id, pr_number, tab_name, sheet_url, scheme, entry_count, participant_count, status, created_at
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT $1`

	getRunQuery = `
SELECT id, pr_number, tab_name, sheet_url, scheme, entry_count, participant_count, status, created_at
FROM runs
WHERE id = $1`

	getRunParticipantsQuery = `
SELECT participant_id, entry_count, done_count
FROM run_participants
WHERE run_id = $1
ORDER BY participant_id`
)

// RecordRun persists a run and its per-participant counters transactionally.
func (p *Postgres) RecordRun(ctx context.Context, run entities.Run) (*entities.Run, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin record run: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, insertRunQuery,
		run.PRNumber, run.TabName, run.SheetURL, run.Scheme,
		run.EntryCount, run.ParticipantCount, run.Status,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		p.log.Errorw("failed to insert run", "error", err, "pr_number", run.PRNumber)
		return nil, fmt.Errorf("insert run: %w", err)
	}

	for _, rp := range run.Participants {
		if _, err := tx.Exec(ctx, insertRunParticipantQuery, run.ID, rp.ParticipantID, rp.EntryCount, rp.DoneCount); err != nil {
			p.log.Errorw("failed to insert run participant", "error", err, "run_id", run.ID, "participant", rp.ParticipantID)
			return nil, fmt.Errorf("insert run participant: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit record run: %w", err)
	}

	p.log.Infow("run recorded", "run_id", run.ID, "pr_number", run.PRNumber, "status", run.Status)
	return &run, nil
}

// Runs returns the most recent runs, newest first.
func (p *Postgres) Runs(ctx context.Context, limit int) ([]entities.Run, error) {
	rows, err := p.db.Query(ctx, listRunsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]entities.Run, 0)
	for rows.Next() {
		var r entities.Run
		if err := rows.Scan(&r.ID, &r.PRNumber, &r.TabName, &r.SheetURL, &r.Scheme,
			&r.EntryCount, &r.ParticipantCount, &r.Status, &r.CreatedAt); err != nil {
			p.log.Errorw("failed to scan run", "error", err)
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Run returns one run with its per-participant counters.
func (p *Postgres) Run(ctx context.Context, id int64) (*entities.Run, error) {
	var r entities.Run
	err := p.db.QueryRow(ctx, getRunQuery, id).Scan(&r.ID, &r.PRNumber, &r.TabName, &r.SheetURL,
		&r.Scheme, &r.EntryCount, &r.ParticipantCount, &r.Status, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRunNotFound
		}
		p.log.Errorw("failed to get run", "error", err, "run_id", id)
		return nil, fmt.Errorf("get run: %w", err)
	}

	rows, err := p.db.Query(ctx, getRunParticipantsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get run participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rp entities.RunParticipant
		if err := rows.Scan(&rp.ParticipantID, &rp.EntryCount, &rp.DoneCount); err != nil {
			return nil, fmt.Errorf("scan run participant: %w", err)
		}
		r.Participants = append(r.Participants, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run participants: %w", err)
	}

	return &r, nil
}
