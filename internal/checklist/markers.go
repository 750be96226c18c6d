// Package checklist extracts checklist markup out of pull-request bodies and
// lays the merged result out as a spreadsheet grid.
package checklist

import "regexp"

// MarkerPair delimits a checklist span with literal start and end tokens.
// Tokens may contain regex metacharacters; they are always matched literally.
type MarkerPair struct {
	Start string
	End   string
}

// ExtractBetween returns the span between the first start token and the next
// end token. A missing start, a missing end, or an end before the first start
// is an empty result, not an error.
func ExtractBetween(body string, m MarkerPair) (string, bool) {
	if m.Start == "" || m.End == "" {
		return "", false
	}
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(m.Start) + `(.*?)` + regexp.QuoteMeta(m.End))
	match := re.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractFence returns the contents of the fenced block tagged
// "prefix-participantID". A document without a block for the participant
// yields an empty result.
func ExtractFence(body, prefix, participantID string) (string, bool) {
	if prefix == "" || participantID == "" {
		return "", false
	}
	tag := regexp.QuoteMeta(prefix + "-" + participantID)
	re := regexp.MustCompile("(?s)```" + tag + "[ \t]*\r?\n(.*?)```")
	match := re.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}
	return match[1], true
}
