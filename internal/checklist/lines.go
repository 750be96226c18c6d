package checklist

import (
	"regexp"
	"strings"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"go.uber.org/zap"
)

var (
	checkboxLineRe = regexp.MustCompile(`^- \[([ xX])\] ?(.*)$`)
	// bracketLineRe catches checkbox-shaped lines whose bracket character is
	// not one the grammar accepts; they are skipped, not demoted to plain.
	bracketLineRe = regexp.MustCompile(`^- \[.?\]`)
	plainLineRe   = regexp.MustCompile(`^- +(.*)$`)
)

// Origin is the attribution stamped onto every entry parsed from one span.
type Origin struct {
	URL    string
	Author string
}

// ParseSpan splits a span into lines and interprets each against the plain
// and checkbox grammars. Unparseable lines are logged and skipped without
// failing the span.
func ParseSpan(log *zap.SugaredLogger, span string, origin Origin) []entities.ChecklistEntry {
	entries := make([]entities.ChecklistEntry, 0)
	for _, raw := range strings.Split(span, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := checkboxLineRe.FindStringSubmatch(line); m != nil {
			done := strings.EqualFold(m[1], "x")
			entries = append(entries, entities.ChecklistEntry{
				Note:         m[2],
				Done:         &done,
				SourceURL:    origin.URL,
				SourceAuthor: origin.Author,
			})
			continue
		}
		if bracketLineRe.MatchString(line) {
			log.Debugw("skipping unparseable checklist line", "line", line, "source", origin.URL)
			continue
		}
		if m := plainLineRe.FindStringSubmatch(line); m != nil {
			entries = append(entries, entities.ChecklistEntry{
				Note:         m[1],
				SourceURL:    origin.URL,
				SourceAuthor: origin.Author,
			})
			continue
		}

		log.Debugw("skipping unparseable checklist line", "line", line, "source", origin.URL)
	}
	return entries
}
