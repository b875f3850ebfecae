// Package brigade manages brigade membership state.
package brigade

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

type brigadeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Brigade, error)
	UpdateState(ctx context.Context, id uuid.UUID, state domain.BrigadeState) (*domain.Brigade, error)
}

// Service implements brigade operations.
type Service struct {
	brigades brigadeRepo
	log      *slog.Logger
}

// NewService creates a new brigade Service.
func NewService(log *slog.Logger, brigades brigadeRepo) *Service {
	return &Service{
		brigades: brigades,
		log:      log.With("service", "brigade"),
	}
}

// Get returns a brigade by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Brigade, error) {
	b, err := s.brigades.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brigade: %w", err)
	}
	return b, nil
}

// Transition moves the brigade to the state named by transition. Every
// transition is allowed from every state; the new state decides quota
// eligibility from then on.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, transition domain.BrigadeTransition) (*domain.Brigade, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("brigade_id", "required")
	}
	target, ok := transition.Target()
	if !ok {
		return nil, domain.NewValidationError("transition", "must be one of accept, kill, unaccept")
	}

	b, err := s.brigades.UpdateState(ctx, id, target)
	if err != nil {
		return nil, fmt.Errorf("update brigade state: %w", err)
	}

	s.log.InfoContext(ctx, "brigade state changed",
		slog.String("brigade_id", id.String()),
		slog.String("transition", string(transition)),
		slog.String("state", string(b.State)),
	)

	return b, nil
}
