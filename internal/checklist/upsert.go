package checklist

import (
	"fmt"
	"regexp"
	"strings"
)

// LinkMarker delimits the generated link section in a pull-request body. It
// never varies with the tab name or date so repeated runs always rewrite the
// same section.
const LinkMarker = "<!-- checklist-board -->"

var linkSectionRe = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(LinkMarker) + `.*?` + regexp.QuoteMeta(LinkMarker))

// UpsertLinkSection returns the body with exactly one marked link section.
// An existing complete section is replaced in place. A dangling marker with
// no closing pair is rewritten into a complete section rather than left to
// shadow the replace branch. Otherwise the section is appended after a blank
// line. The operation is idempotent.
func UpsertLinkSection(body, url, label string) string {
	section := fmt.Sprintf("%s\n[%s](%s)\n%s", LinkMarker, label, url, LinkMarker)
	if linkSectionRe.MatchString(body) {
		return replaceFirst(body, section)
	}
	if strings.Contains(body, LinkMarker) {
		return strings.Replace(body, LinkMarker, section, 1)
	}
	if strings.TrimSpace(body) == "" {
		return section
	}
	return strings.TrimRight(body, "\n") + "\n\n" + section
}

func replaceFirst(body, section string) string {
	replaced := false
	return linkSectionRe.ReplaceAllStringFunc(body, func(old string) string {
		if replaced {
			return old
		}
		replaced = true
		return section
	})
}
