// Package api contains transport DTOs shared by handlers and clients.
package api

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// INVALIDARGUMENT marks failed request validation.
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	// ROSTERINVALID marks a misconfigured participant roster.
	ROSTERINVALID ErrorResponseErrorCode = "ROSTER_INVALID"
	// SOURCEHOST marks a pull-request host failure.
	SOURCEHOST ErrorResponseErrorCode = "SOURCE_HOST_ERROR"
	// DESTINATION marks a spreadsheet destination failure.
	DESTINATION ErrorResponseErrorCode = "DESTINATION_ERROR"
	// INTERNAL marks an unclassified server failure.
	INTERNAL ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// SyncRequest triggers a checklist sync run for one pull request.
type SyncRequest struct {
	PullRequestNumber int    `json:"pull_request_number"`
	SinceRef          string `json:"since_ref,omitempty"`
}

// SyncResponse reports the outcome of a sync run.
type SyncResponse struct {
	Skipped    bool   `json:"skipped"`
	EntryCount int    `json:"entry_count"`
	TabName    string `json:"tab_name,omitempty"`
	SheetURL   string `json:"sheet_url,omitempty"`
	RunID      int64  `json:"run_id,omitempty"`
}

// RunParticipant carries per-participant counters of one run.
type RunParticipant struct {
	ParticipantID string `json:"participant_id"`
	EntryCount    int    `json:"entry_count"`
	DoneCount     int    `json:"done_count"`
}

// Run is the transport view of a recorded run.
type Run struct {
	ID               int64            `json:"id"`
	PullRequestNum   int              `json:"pull_request_number"`
	TabName          string           `json:"tab_name"`
	SheetURL         string           `json:"sheet_url"`
	Scheme           string           `json:"scheme"`
	EntryCount       int              `json:"entry_count"`
	ParticipantCount int              `json:"participant_count"`
	Status           string           `json:"status"`
	CreatedAt        string           `json:"created_at,omitempty"`
	Participants     []RunParticipant `json:"participants,omitempty"`
}

// ParticipantStat carries per-participant totals across runs.
type ParticipantStat struct {
	ParticipantID string `json:"participant_id"`
	EntryCount    int64  `json:"entry_count"`
	DoneCount     int64  `json:"done_count"`
}

// Stats aggregates counters across all recorded runs.
type Stats struct {
	Runs          int64             `json:"runs"`
	Skipped       int64             `json:"skipped"`
	Entries       int64             `json:"entries"`
	ByParticipant []ParticipantStat `json:"by_participant"`
}
