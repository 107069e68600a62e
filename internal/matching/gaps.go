package matching

import "strings"

// MissingSkillsFromTop collects the missing skills of the first n ranked
// matches, in ranked order, dropping case-insensitive repeats. A non-positive
// n considers every match.
func MissingSkillsFromTop(ranked []Match, n int) []string {
	if n <= 0 || n > len(ranked) {
		n = len(ranked)
	}
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for _, m := range ranked[:n] {
		for _, skill := range m.MissingSkills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, skill)
		}
	}
	return out
}
