package checklist

import (
	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"go.uber.org/zap"
)

// Aggregator merges checklist entries parsed from many documents into one
// ordered collection, optionally partitioned per participant.
type Aggregator struct {
	log          *zap.SugaredLogger
	scheme       entities.MarkupScheme
	markers      MarkerPair
	fencePrefix  string
	participants []entities.Participant
}

// NewAggregator constructs an aggregator for one markup scheme.
func NewAggregator(
	log *zap.SugaredLogger,
	scheme entities.MarkupScheme,
	markers MarkerPair,
	fencePrefix string,
	participants []entities.Participant,
) *Aggregator {
	return &Aggregator{
		log:          log.Named("checklist.aggregate"),
		scheme:       scheme,
		markers:      markers,
		fencePrefix:  fencePrefix,
		participants: participants,
	}
}

// Aggregate dedupes documents by pull-request number (first occurrence wins),
// guarantees the active document is present exactly once, then parses each
// document in order. Entries from an earlier document always precede entries
// from a later one.
func (a *Aggregator) Aggregate(docs []entities.ChecklistDocument, active entities.ChecklistDocument) entities.AggregatedChecklist {
	ordered := dedupeByNumber(docs)
	if !containsNumber(ordered, active.Number) {
		ordered = append(ordered, active)
	}

	switch a.scheme {
	case entities.SchemePerParticipantFence:
		return a.aggregateFenced(ordered)
	default:
		return a.aggregatePlain(ordered)
	}
}

func (a *Aggregator) aggregatePlain(docs []entities.ChecklistDocument) entities.AggregatedChecklist {
	entries := make([]entities.ChecklistEntry, 0)
	for _, doc := range docs {
		span, ok := ExtractBetween(doc.Body, a.markers)
		if !ok {
			continue
		}
		entries = append(entries, ParseSpan(a.log, span, Origin{URL: doc.URL, Author: doc.Author})...)
	}
	a.log.Infow("aggregated checklist", "scheme", a.scheme, "documents", len(docs), "entries", len(entries))
	return entities.AggregatedChecklist{Entries: entries}
}

func (a *Aggregator) aggregateFenced(docs []entities.ChecklistDocument) entities.AggregatedChecklist {
	partition := make(map[string][]entities.ChecklistEntry, len(a.participants))
	for _, p := range a.participants {
		partition[p.ID] = make([]entities.ChecklistEntry, 0)
	}

	for _, doc := range docs {
		origin := Origin{URL: doc.URL, Author: doc.Author}
		for _, p := range a.participants {
			span, ok := ExtractFence(doc.Body, a.fencePrefix, p.ID)
			if !ok {
				continue
			}
			partition[p.ID] = append(partition[p.ID], ParseSpan(a.log, span, origin)...)
		}
	}

	agg := entities.AggregatedChecklist{PerParticipant: partition}
	a.log.Infow("aggregated checklist", "scheme", a.scheme, "documents", len(docs), "entries", agg.Total())
	return agg
}

func dedupeByNumber(docs []entities.ChecklistDocument) []entities.ChecklistDocument {
	seen := make(map[int]struct{}, len(docs))
	out := make([]entities.ChecklistDocument, 0, len(docs))
	for _, doc := range docs {
		if _, ok := seen[doc.Number]; ok {
			continue
		}
		seen[doc.Number] = struct{}{}
		out = append(out, doc)
	}
	return out
}

func containsNumber(docs []entities.ChecklistDocument, number int) bool {
	for _, doc := range docs {
		if doc.Number == number {
			return true
		}
	}
	return false
}
