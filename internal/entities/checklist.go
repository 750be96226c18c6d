// Package entities contains core business entities.
package entities

// MarkupScheme selects how checklist markup is scoped inside a document.
type MarkupScheme string

const (
	// SchemePlain marks checklists delimited by a paired start/end marker,
	// shared by the whole roster.
	SchemePlain MarkupScheme = "PLAIN"
	// SchemePerParticipantFence marks one language-tagged fenced block per
	// participant.
	SchemePerParticipantFence MarkupScheme = "PER_PARTICIPANT_FENCE"
)

// ChecklistEntry is one parsed checklist line with its origin attribution.
// Done is nil for markup that carries no checkbox.
type ChecklistEntry struct {
	Note         string
	Done         *bool
	SourceURL    string
	SourceAuthor string
}

// ChecklistDocument is the body of one pull request together with the
// attribution stamped onto every entry parsed out of it.
type ChecklistDocument struct {
	Number int
	URL    string
	Author string
	Body   string
}

// AggregatedChecklist is the merged, ordered result of parsing many
// documents. Entries holds the shared list for the plain scheme;
// PerParticipant holds one ordered list per participant id for the fenced
// scheme. Exactly one of the two is populated.
type AggregatedChecklist struct {
	Entries        []ChecklistEntry
	PerParticipant map[string][]ChecklistEntry
}

// Empty reports whether no entry was found across all participants.
func (a AggregatedChecklist) Empty() bool {
	return a.Total() == 0
}

// Total counts entries across the shared list and all participant lists.
func (a AggregatedChecklist) Total() int {
	n := len(a.Entries)
	for _, list := range a.PerParticipant {
		n += len(list)
	}
	return n
}

// Longest returns the longest participant list length, or the shared list
// length when the aggregate is not partitioned.
func (a AggregatedChecklist) Longest() int {
	if a.PerParticipant == nil {
		return len(a.Entries)
	}
	longest := 0
	for _, list := range a.PerParticipant {
		if len(list) > longest {
			longest = len(list)
		}
	}
	return longest
}
