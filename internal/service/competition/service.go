// Package competition keeps competition worth and nomination ownership
// consistent.
package competition

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/achievement"
)

type competitionRepo interface {
	GetParticipantForUpdate(ctx context.Context, id uuid.UUID) (*domain.CompetitionParticipant, error)
	UpdateParticipantWorth(ctx context.Context, ids []uuid.UUID, worth domain.CompetitionWorth) error
	BoecIDs(ctx context.Context, participantIDs []uuid.UUID) ([]uuid.UUID, error)
	GetNominationForUpdate(ctx context.Context, id uuid.UUID) (*domain.Nomination, error)
	AddOwner(ctx context.Context, nominationID, participantID uuid.UUID) error
	ReleaseOwnership(ctx context.Context, participantID uuid.UUID) (int, error)
	DeleteNomination(ctx context.Context, id uuid.UUID) error
}

type achievementRefresher interface {
	RefreshMany(ctx context.Context, boecIDs []uuid.UUID) (*achievement.BatchResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements competition operations.
type Service struct {
	competitions competitionRepo
	refresher    achievementRefresher
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new competition Service.
func NewService(log *slog.Logger, competitions competitionRepo, refresher achievementRefresher, tx txManager) *Service {
	return &Service{
		competitions: competitions,
		refresher:    refresher,
		tx:           tx,
		log:          log.With("service", "competition"),
	}
}

// refresh re-evaluates achievements of boecs affected by a committed change.
// Failures are logged and never undo the change.
func (s *Service) refresh(ctx context.Context, boecIDs []uuid.UUID) {
	if len(boecIDs) == 0 {
		return
	}
	res, err := s.refresher.RefreshMany(ctx, boecIDs)
	if err != nil {
		s.log.ErrorContext(ctx, "refresh achievements", slog.String("error", err.Error()))
		return
	}
	if len(res.Failed) > 0 {
		s.log.WarnContext(ctx, "achievement refresh incomplete",
			slog.Int("failed", len(res.Failed)),
			slog.Int("processed", res.Processed),
		)
	}
}
