// Package skills holds the closed vocabulary of recognized skill tokens and
// the literal matcher used to detect them in résumé text.
package skills

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed lexicon.json
var defaultLexiconJSON []byte

// ErrInvalidLexicon is returned when a lexicon document fails validation.
var ErrInvalidLexicon = errors.New("invalid skill lexicon")

var validate = validator.New()

// Lexicon is a versioned, read-only table of lowercase skill tokens.
type Lexicon struct {
	version string
	skills  []string
}

type lexiconDocument struct {
	Version string   `json:"version" validate:"required"`
	Skills  []string `json:"skills" validate:"required,min=1,dive,required"`
}

// New builds a lexicon from raw entries. Entries are trimmed and lower-cased;
// duplicates keep their first position.
func New(version string, entries []string) (Lexicon, error) {
	doc := lexiconDocument{Version: strings.TrimSpace(version), Skills: entries}
	if err := validate.Struct(doc); err != nil {
		return Lexicon{}, fmt.Errorf("%w: %v", ErrInvalidLexicon, err)
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		token := strings.ToLower(strings.TrimSpace(entry))
		if token == "" {
			return Lexicon{}, fmt.Errorf("%w: blank entry", ErrInvalidLexicon)
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return Lexicon{version: doc.Version, skills: out}, nil
}

// Load decodes a JSON lexicon document of the form {"version": "...", "skills": [...]}.
func Load(r io.Reader) (Lexicon, error) {
	var doc lexiconDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Lexicon{}, fmt.Errorf("%w: decode: %v", ErrInvalidLexicon, err)
	}
	return New(doc.Version, doc.Skills)
}

// LoadFile reads a lexicon document from disk.
func LoadFile(path string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in lexicon.
func Default() Lexicon {
	lex, err := Load(bytes.NewReader(defaultLexiconJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon: %v", err))
	}
	return lex
}

// Version identifies the lexicon revision.
func (l Lexicon) Version() string {
	return l.version
}

// Len reports the number of tokens.
func (l Lexicon) Len() int {
	return len(l.skills)
}

// Skills returns a copy of the tokens in table order.
func (l Lexicon) Skills() []string {
	return append([]string(nil), l.skills...)
}

// Contains reports whether token (case-insensitive) is part of the lexicon.
func (l Lexicon) Contains(token string) bool {
	needle := strings.ToLower(strings.TrimSpace(token))
	for _, s := range l.skills {
		if s == needle {
			return true
		}
	}
	return false
}
