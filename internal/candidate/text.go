package candidate

import (
	"strings"
	"unicode/utf8"
)

// Text carries résumé text in its original form and case-folded for matching.
type Text struct {
	Raw    string
	Folded string
}

// NewText folds raw for pattern search while keeping the original for
// case-sensitive fields such as name and email.
func NewText(raw string) Text {
	return Text{Raw: raw, Folded: strings.ToLower(raw)}
}

// Len is the length of the raw text in characters.
func (t Text) Len() int {
	return utf8.RuneCountInString(t.Raw)
}

// Lines returns up to limit non-empty, trimmed lines of the raw text.
func (t Text) Lines(limit int) []string {
	out := make([]string, 0, limit)
	for _, line := range strings.Split(t.Raw, "\n") {
		if len(out) >= limit {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
