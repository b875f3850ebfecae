// Package participant manages event registration and approval.
package participant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/achievement"
	"github.com/VMatyagin/so-rest/internal/service/activity"
)

type participantRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*domain.Participant, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
}

type boecRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Boec, error)
	LastSeasonBrigade(ctx context.Context, boecID uuid.UUID) (*uuid.UUID, error)
}

type activityRecorder interface {
	Record(ctx context.Context, boecID uuid.UUID, input activity.RecordInput) (*domain.Activity, error)
}

type achievementRefresher interface {
	RefreshMany(ctx context.Context, boecIDs []uuid.UUID) (*achievement.BatchResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements participant operations.
type Service struct {
	participants participantRepo
	events       eventRepo
	boecs        boecRepo
	recorder     activityRecorder
	refresher    achievementRefresher
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new participant Service.
func NewService(
	log *slog.Logger,
	participants participantRepo,
	events eventRepo,
	boecs boecRepo,
	recorder activityRecorder,
	refresher achievementRefresher,
	tx txManager,
) *Service {
	return &Service{
		participants: participants,
		events:       events,
		boecs:        boecs,
		recorder:     recorder,
		refresher:    refresher,
		tx:           tx,
		log:          log.With("service", "participant"),
	}
}
