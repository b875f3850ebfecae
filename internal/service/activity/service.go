package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

type boecRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Boec, error)
	IncrementUnread(ctx context.Context, id uuid.UUID, delta int) (int, error)
	SetUnread(ctx context.Context, id uuid.UUID, count int) error
	ResetUnread(ctx context.Context, id uuid.UUID) error
}

type activityRepo interface {
	CreateWarning(ctx context.Context, w *domain.Warning) (*domain.Warning, error)
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	MarkAllSeen(ctx context.Context, boecID uuid.UUID) (int, error)
	CountUnseen(ctx context.Context, boecID uuid.UUID) (int, error)
	List(ctx context.Context, boecID uuid.UUID, seen *bool) ([]domain.Activity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the activity ledger. Every mutation locks the boec row so the
// unread counter and the feed change together.
type Service struct {
	boecs      boecRepo
	activities activityRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new activity Service.
func NewService(
	log *slog.Logger,
	boecs boecRepo,
	activities activityRepo,
	tx txManager,
) *Service {
	return &Service{
		boecs:      boecs,
		activities: activities,
		tx:         tx,
		log:        log.With("service", "activity"),
	}
}
