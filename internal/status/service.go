package status

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobmatch-backend/internal/shared/telemetry"
)

const maxClientNameLength = 200

// Service records and lists status checks.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// Record stores a new check for clientName.
func (s *Service) Record(ctx context.Context, clientName string) (Check, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return Check{}, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(clientName) > maxClientNameLength {
		return Check{}, fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, maxClientNameLength)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	check := Check{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  now().UTC(),
	}
	if err := s.Repo.Create(ctx, check); err != nil {
		return Check{}, fmt.Errorf("save status check: %w", err)
	}
	telemetry.Info("status.recorded", map[string]any{"status_id": check.ID, "client_name": clientName})
	return check, nil
}

// List returns recorded checks.
func (s *Service) List(ctx context.Context, limit int) ([]Check, error) {
	return s.Repo.List(ctx, limit)
}
