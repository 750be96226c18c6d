// Package entities contains core business entities.
package entities

import "time"

// RunStatus enumerates terminal states of a sync run.
type RunStatus string

const (
	// RunStatusDone marks a run that wrote a tab.
	RunStatusDone RunStatus = "DONE"
	// RunStatusSkipped marks a run that found no entries and stopped cleanly.
	RunStatusSkipped RunStatus = "SKIPPED"
)

// Run is the recorded outcome of one sync run.
type Run struct {
	ID               int64            `json:"id"`
	PRNumber         int              `json:"pr_number"`
	TabName          string           `json:"tab_name"`
	SheetURL         string           `json:"sheet_url"`
	Scheme           MarkupScheme     `json:"scheme"`
	EntryCount       int              `json:"entry_count"`
	ParticipantCount int              `json:"participant_count"`
	Status           RunStatus        `json:"status"`
	CreatedAt        *time.Time       `json:"created_at,omitempty"`
	Participants     []RunParticipant `json:"participants,omitempty"`
}

// RunParticipant holds per-participant counters for one run.
type RunParticipant struct {
	ParticipantID string `json:"participant_id"`
	EntryCount    int    `json:"entry_count"`
	DoneCount     int    `json:"done_count"`
}

// RunStats aggregates counters across all recorded runs.
type RunStats struct {
	Runs          int64             `json:"runs"`
	Skipped       int64             `json:"skipped"`
	Entries       int64             `json:"entries"`
	ByParticipant []ParticipantStat `json:"by_participant"`
}

// ParticipantStat contains totals for a single participant across runs.
type ParticipantStat struct {
	ParticipantID string `json:"participant_id"`
	EntryCount    int64  `json:"entry_count"`
	DoneCount     int64  `json:"done_count"`
}
