// Package achievement re-evaluates boecs against the achievement catalog and
// grants newly reached achievements.
package achievement

import (
	"context"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/VMatyagin/so-rest/internal/config"
	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/activity"
)

var tracer = otel.Tracer("github.com/VMatyagin/so-rest/internal/service/achievement")

type boecRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Boec, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type achievementRepo interface {
	ListCatalog(ctx context.Context) ([]domain.Achievement, error)
	ListRanked(ctx context.Context) ([]domain.Achievement, error)
	GrantedIDs(ctx context.Context, boecID uuid.UUID) (map[uuid.UUID]struct{}, error)
	Grant(ctx context.Context, achievementID, boecID uuid.UUID) (bool, error)
}

type progressRepo interface {
	Progress(ctx context.Context, boecID uuid.UUID) (domain.Progress, error)
}

type activityRecorder interface {
	Record(ctx context.Context, boecID uuid.UUID, input activity.RecordInput) (*domain.Activity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements achievement refresh.
type Service struct {
	boecs        boecRepo
	achievements achievementRepo
	progress     progressRepo
	recorder     activityRecorder
	tx           txManager
	cfg          config.AchievementsConfig
	log          *slog.Logger

	newBackOff func() backoff.BackOff
}

// NewService creates a new achievement Service.
func NewService(
	log *slog.Logger,
	boecs boecRepo,
	achievements achievementRepo,
	progress progressRepo,
	recorder activityRecorder,
	tx txManager,
	cfg config.AchievementsConfig,
) *Service {
	return &Service{
		boecs:        boecs,
		achievements: achievements,
		progress:     progress,
		recorder:     recorder,
		tx:           tx,
		cfg:          cfg,
		log:          log.With("service", "achievement"),
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}
