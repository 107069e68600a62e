package profiles

import "context"

// MaxListLimit caps how many profiles a listing returns.
const MaxListLimit = 100

// Repo defines persistence operations for profiles.
type Repo interface {
	Create(ctx context.Context, p Profile) error
	Get(ctx context.Context, id string) (Profile, error)
	// List returns profiles newest first, at most limit (clamped to MaxListLimit).
	List(ctx context.Context, limit int) ([]Profile, error)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
