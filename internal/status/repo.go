package status

import (
	"context"
	"sync"
)

// MaxListLimit caps how many checks a listing returns.
const MaxListLimit = 1000

// Repo defines persistence operations for status checks.
type Repo interface {
	Create(ctx context.Context, check Check) error
	// List returns checks oldest first, at most limit (clamped to MaxListLimit).
	List(ctx context.Context, limit int) ([]Check, error)
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	checks []Check
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a check.
func (r *MemoryRepo) Create(ctx context.Context, check Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, check)
	return nil
}

// List returns checks in insertion order.
func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Check, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = clampLimit(limit)
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.checks)
	if n > limit {
		n = limit
	}
	out := make([]Check, n)
	copy(out, r.checks[:n])
	return out, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

var _ Repo = (*MemoryRepo)(nil)
