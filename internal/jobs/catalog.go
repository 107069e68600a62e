// Package jobs holds the immutable job catalog the matcher scores against.
package jobs

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

//go:embed sample_jobs.json
var sampleJobsJSON []byte

// ErrInvalidCatalog is returned when catalog records fail validation.
var ErrInvalidCatalog = errors.New("invalid job catalog")

var validate = validator.New()

// Record is a single job posting.
type Record struct {
	ID                 string   `json:"id" validate:"required"`
	Title              string   `json:"title" validate:"required"`
	Company            string   `json:"company"`
	RequiredSkills     []string `json:"requiredSkills" validate:"dive,required"`
	ExperienceRequired int      `json:"experienceRequired" validate:"gte=0"`
	Description        string   `json:"description"`
	Location           string   `json:"location"`
	SalaryRange        string   `json:"salaryRange"`
}

func (r Record) clone() Record {
	r.RequiredSkills = append([]string{}, r.RequiredSkills...)
	return r
}

// Catalog is a read-only, ordered collection of job records. A Catalog may be
// shared across goroutines without synchronization.
type Catalog struct {
	records []Record
	byID    map[string]int
}

// NewCatalog validates records and returns a Catalog holding private copies.
// Ids must be unique and a record may not repeat a required skill.
func NewCatalog(records []Record) (*Catalog, error) {
	c := &Catalog{
		records: make([]Record, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.byID[rec.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, rec.ID)
		}
		if skill, dup := repeatedSkill(rec.RequiredSkills); dup {
			return nil, fmt.Errorf("%w: record %q repeats skill %q", ErrInvalidCatalog, rec.ID, skill)
		}
		c.byID[rec.ID] = len(c.records)
		c.records = append(c.records, rec.clone())
	}
	return c, nil
}

func repeatedSkill(skills []string) (string, bool) {
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if _, ok := seen[key]; ok {
			return s, true
		}
		seen[key] = struct{}{}
	}
	return "", false
}

// Load decodes a JSON array of records.
func Load(r io.Reader) (*Catalog, error) {
	var records []Record
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	return NewCatalog(records)
}

// LoadFile reads a JSON catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in sample catalog.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(sampleJobsJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns copies of all records in catalog order.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.clone()
	}
	return out
}

// Get looks up a record by id.
func (c *Catalog) Get(id string) (Record, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Record{}, false
	}
	return c.records[idx].clone(), true
}
