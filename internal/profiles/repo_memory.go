package profiles

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Profile),
	}
}

// Create stores a profile, replacing any profile with the same ID.
func (r *MemoryRepo) Create(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.ID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.ID] = clone(p)
	return nil
}

// Get returns a profile by ID.
func (r *MemoryRepo) Get(ctx context.Context, id string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return clone(p), nil
}

// List returns profiles newest first.
func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]Profile, 0, len(r.data))
	for _, p := range r.data {
		out = append(out, clone(p))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit = clampLimit(limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func clone(p Profile) Profile {
	p.Skills = append([]string{}, p.Skills...)
	p.Certifications = append([]string{}, p.Certifications...)
	return p
}

var _ Repo = (*MemoryRepo)(nil)
