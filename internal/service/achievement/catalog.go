package achievement

import (
	"context"
	"fmt"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// Catalog returns every achievement with its holder count, most held first.
func (s *Service) Catalog(ctx context.Context) ([]domain.Achievement, error) {
	items, err := s.achievements.ListRanked(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ranked: %w", err)
	}
	return items, nil
}
