package skills

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchMode selects how a token is located in text.
type MatchMode string

const (
	// MatchSubstring finds a token anywhere, including inside other words.
	MatchSubstring MatchMode = "substring"
	// MatchWord requires the token to be delimited by non-alphanumeric runes or text edges.
	MatchWord MatchMode = "word"
)

// ParseMatchMode maps a config value onto a MatchMode. Empty selects MatchSubstring.
func ParseMatchMode(raw string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(MatchSubstring):
		return MatchSubstring, nil
	case string(MatchWord), "word-boundary", "word_boundary":
		return MatchWord, nil
	default:
		return "", fmt.Errorf("unknown skill match mode %q", raw)
	}
}

// Find returns the lexicon tokens present in folded (already lower-cased) text,
// in lexicon order and without duplicates.
func (l Lexicon) Find(folded string, mode MatchMode) []string {
	found := make([]string, 0, 8)
	for _, token := range l.skills {
		var hit bool
		if mode == MatchWord {
			hit = containsWord(folded, token)
		} else {
			hit = strings.Contains(folded, token)
		}
		if hit {
			found = append(found, token)
		}
	}
	return found
}

func containsWord(text, token string) bool {
	offset := 0
	for {
		idx := strings.Index(text[offset:], token)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(token)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !isWordRune(r)
}

func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
