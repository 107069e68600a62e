// Package candidate turns decoded résumé text into a structured candidate profile.
package candidate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"jobmatch-backend/internal/skills"
)

// NotFound is the sentinel stored in identity fields that could not be extracted.
const NotFound = "Not found"

// nameScanLines bounds how far into the document the name heuristic looks.
const nameScanLines = 5

// ExperienceSource records how ExperienceYears was obtained.
type ExperienceSource string

const (
	// ExperienceDetected means a phrase in the text stated the years.
	ExperienceDetected ExperienceSource = "detected"
	// ExperienceEstimated means the value came from the document-length heuristic.
	ExperienceEstimated ExperienceSource = "estimated"
)

// Profile is the structured result of extraction.
type Profile struct {
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Skills           []string         `json:"skills"`
	ExperienceYears  int              `json:"experienceYears"`
	ExperienceSource ExperienceSource `json:"experienceSource"`
}

// HasSkill reports whether the profile lists skill, ignoring case.
func (p Profile) HasSkill(skill string) bool {
	needle := strings.ToLower(strings.TrimSpace(skill))
	for _, s := range p.Skills {
		if strings.ToLower(s) == needle {
			return true
		}
	}
	return false
}

// Experience patterns in priority order; the first one that matches wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience\s*[:\-]?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*(?:software|development|programming)`),
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	namePattern  = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// Extractor detects skills, experience and identity in résumé text.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	lexicon skills.Lexicon
	mode    skills.MatchMode
}

// NewExtractor builds an Extractor over the given lexicon.
func NewExtractor(lexicon skills.Lexicon, mode skills.MatchMode) *Extractor {
	if mode == "" {
		mode = skills.MatchSubstring
	}
	return &Extractor{lexicon: lexicon, mode: mode}
}

// Lexicon returns the vocabulary used for skill detection.
func (e *Extractor) Lexicon() skills.Lexicon {
	return e.lexicon
}

// Extract builds a Profile from raw text. Empty text is valid: it yields no
// skills, sentinel identity fields and the minimum estimated experience.
func (e *Extractor) Extract(raw string) Profile {
	text := NewText(raw)
	years, source := experienceYears(text)
	return Profile{
		Name:             extractName(text),
		Email:            extractEmail(text),
		Skills:           e.lexicon.Find(text.Folded, e.mode),
		ExperienceYears:  years,
		ExperienceSource: source,
	}
}

func experienceYears(text Text) (int, ExperienceSource) {
	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(text.Folded)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			// Out of int range; treat as no usable match.
			continue
		}
		return years, ExperienceDetected
	}
	return estimateExperience(text.Len()), ExperienceEstimated
}

// estimateExperience is a coarse length heuristic, not a measurement.
func estimateExperience(length int) int {
	switch {
	case length > 2000:
		return 3
	case length > 1000:
		return 2
	default:
		return 1
	}
}

func extractEmail(text Text) string {
	if m := emailPattern.FindString(text.Raw); m != "" {
		return m
	}
	return NotFound
}

func extractName(text Text) string {
	for _, line := range text.Lines(nameScanLines) {
		n := utf8.RuneCountInString(line)
		if n <= 2 || n >= 50 || strings.Contains(line, "@") {
			continue
		}
		if namePattern.MatchString(line) {
			return line
		}
	}
	return NotFound
}
