// Package progress exposes a boec's aggregated participation metrics.
package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

type progressRepo interface {
	Progress(ctx context.Context, boecID uuid.UUID) (domain.Progress, error)
}

// Service computes progress on demand. Nothing is cached: every call reads
// the current participation records.
type Service struct {
	progress progressRepo
	log      *slog.Logger
}

// NewService creates a new progress Service.
func NewService(log *slog.Logger, progress progressRepo) *Service {
	return &Service{
		progress: progress,
		log:      log.With("service", "progress"),
	}
}

// Progress returns every metric key for the boec. Keys without matching
// records are present with a zero count.
func (s *Service) Progress(ctx context.Context, boecID uuid.UUID) (domain.Progress, error) {
	if boecID == uuid.Nil {
		return nil, domain.NewValidationError("boec_id", "required")
	}

	p, err := s.progress.Progress(ctx, boecID)
	if err != nil {
		return nil, fmt.Errorf("compute progress: %w", err)
	}

	out := make(domain.Progress, len(domain.AchievementTypes))
	for _, key := range domain.AchievementTypes {
		out[key] = p.Get(key)
	}

	s.log.DebugContext(ctx, "progress computed", slog.String("boec_id", boecID.String()))
	return out, nil
}
