package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// List returns the boec's feed, newest first.
func (s *Service) List(ctx context.Context, boecID uuid.UUID, input ListInput) ([]domain.Activity, error) {
	if boecID == uuid.Nil {
		return nil, domain.NewValidationError("boec_id", "required")
	}

	items, err := s.activities.List(ctx, boecID, input.Seen)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return items, nil
}
