// Package event drives the event lifecycle and quota distribution.
package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/VMatyagin/so-rest/internal/config"
	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/achievement"
)

var tracer = otel.Tracer("github.com/VMatyagin/so-rest/internal/service/event")

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	UpdateState(ctx context.Context, id uuid.UUID, state domain.EventState) error
	RefreshTargets(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	ListQuotas(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error)
	ReplaceQuotas(ctx context.Context, eventID uuid.UUID, quotas []domain.EventQuota) error
	ApprovedDefaultCounts(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error)
	CountTickets(ctx context.Context, eventID uuid.UUID) (int, error)
	AssignTicketCodes(ctx context.Context, eventID uuid.UUID) (int, error)
}

type brigadeRepo interface {
	EligibleWeights(ctx context.Context, scope domain.BrigadeScope, states []domain.BrigadeState, year int) ([]domain.BrigadeWeight, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInTxSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type achievementRefresher interface {
	RefreshMany(ctx context.Context, boecIDs []uuid.UUID) (*achievement.BatchResult, error)
}

// Service implements event lifecycle operations.
type Service struct {
	events    eventRepo
	brigades  brigadeRepo
	tx        txManager
	refresher achievementRefresher
	cfg       config.AchievementsConfig
	log       *slog.Logger
	now       func() time.Time

	// background tracks achievement refreshes started by completed events.
	background sync.WaitGroup
}

// NewService creates a new event Service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	brigades brigadeRepo,
	tx txManager,
	refresher achievementRefresher,
	cfg config.AchievementsConfig,
) *Service {
	return &Service{
		events:    events,
		brigades:  brigades,
		tx:        tx,
		refresher: refresher,
		cfg:       cfg,
		log:       log.With("service", "event"),
		now:       time.Now,
	}
}

// Wait blocks until every background achievement refresh has finished.
func (s *Service) Wait() {
	s.background.Wait()
}
