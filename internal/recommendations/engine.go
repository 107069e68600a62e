// Package recommendations turns skill gaps into prioritized learning links.
package recommendations

import (
	"net/url"
	"strings"
)

const (
	// DefaultLimit caps the number of recommendations per request.
	DefaultLimit = 8
	// DefaultSearchBase is the search endpoint the query is appended to.
	DefaultSearchBase = "https://www.google.com/search?q="
)

// DefaultHighPriority lists skills recommended with high priority.
var DefaultHighPriority = []string{"python", "javascript", "react", "sql", "aws", "docker"}

// Engine builds recommendations. It is immutable and safe for concurrent use.
type Engine struct {
	highPriority map[string]struct{}
	searchBase   string
	limit        int
}

// New constructs an Engine from cfg.
func New(cfg Config) *Engine {
	high := cfg.HighPriority
	if len(high) == 0 {
		high = DefaultHighPriority
	}
	set := make(map[string]struct{}, len(high))
	for _, s := range high {
		set[normalize(s)] = struct{}{}
	}
	base := strings.TrimSpace(cfg.SearchBase)
	if base == "" {
		base = DefaultSearchBase
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Engine{highPriority: set, searchBase: base, limit: limit}
}

// Default returns an Engine with the default priorities, search URL and limit.
func Default() *Engine {
	return New(Config{})
}

// Recommend maps missing skills, in the order given, to at most Limit
// recommendations. Blank entries and case-insensitive repeats are skipped.
func (e *Engine) Recommend(missing []string) []Recommendation {
	out := make([]Recommendation, 0, min(len(missing), e.limit))
	seen := make(map[string]struct{}, len(missing))
	for _, raw := range missing {
		if len(out) == e.limit {
			break
		}
		skill := strings.TrimSpace(raw)
		key := normalize(skill)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Recommendation{
			Skill:     skill,
			SearchURL: e.SearchURL(skill),
			Priority:  e.priority(key),
			Order:     len(out) + 1,
		})
	}
	return out
}

// SearchURL builds the learning search link for skill. Spaces are encoded as %20.
func (e *Engine) SearchURL(skill string) string {
	query := url.QueryEscape("learn " + skill + " online course tutorial")
	return e.searchBase + strings.ReplaceAll(query, "+", "%20")
}

// Limit reports the maximum number of recommendations returned.
func (e *Engine) Limit() int {
	return e.limit
}

func (e *Engine) priority(key string) Priority {
	if _, ok := e.highPriority[key]; ok {
		return PriorityHigh
	}
	return PriorityMedium
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
