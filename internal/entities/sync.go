// Package entities contains core business entities.
package entities

// SyncRequest asks for one checklist sync run.
type SyncRequest struct {
	PRNumber int
	SinceRef string
}

// SyncResult is the outcome of a sync run. Skipped is true when the
// aggregate held no entries and the run stopped before contacting the
// destination.
type SyncResult struct {
	Skipped    bool
	EntryCount int
	Tab        *Tab
	Run        *Run
}
