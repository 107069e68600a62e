// Package matching scores a candidate profile against a job catalog.
package matching

import (
	"math"
	"sort"
	"strings"

	"jobmatch-backend/internal/candidate"
	"jobmatch-backend/internal/jobs"
)

const (
	maxFitScore      = 100.0
	underQualified   = 0.8
	overQualified    = 1.1
	overQualifiedGap = 2
)

// Match is the result of scoring one job against one profile.
type Match struct {
	jobs.Record
	FitScore      float64  `json:"fitScore"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// Score returns one Match per job, ordered by FitScore descending. Jobs with
// equal scores keep their catalog order.
func Score(p candidate.Profile, records []jobs.Record) []Match {
	have := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		have[strings.ToLower(s)] = struct{}{}
	}

	matches := make([]Match, 0, len(records))
	for _, rec := range records {
		matches = append(matches, scoreJob(have, p.ExperienceYears, rec))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FitScore > matches[j].FitScore
	})
	return matches
}

func scoreJob(have map[string]struct{}, years int, rec jobs.Record) Match {
	matched := make([]string, 0, len(rec.RequiredSkills))
	missing := make([]string, 0, len(rec.RequiredSkills))
	for _, skill := range rec.RequiredSkills {
		if _, ok := have[strings.ToLower(skill)]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	var ratio float64
	if total := len(rec.RequiredSkills); total > 0 {
		ratio = float64(len(matched)) / float64(total) * 100
	}
	score := math.Min(ratio*ExperienceFactor(years, rec.ExperienceRequired), maxFitScore)

	rec.RequiredSkills = append([]string{}, rec.RequiredSkills...)
	return Match{
		Record:        rec,
		FitScore:      roundTenth(score),
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// ExperienceFactor is the multiplier applied to the skill ratio: a penalty
// when the candidate has fewer years than required, a bonus when they exceed
// the requirement by more than two years.
func ExperienceFactor(candidateYears, requiredYears int) float64 {
	switch {
	case candidateYears < requiredYears:
		return underQualified
	case candidateYears > requiredYears+overQualifiedGap:
		return overQualified
	default:
		return 1.0
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
