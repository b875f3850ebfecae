// Package ticket implements ticket scanning at event entry.
package ticket

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

type ticketRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	LastScan(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error)
	LastFinalScan(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error)
	CreateScan(ctx context.Context, s *domain.TicketScan) (*domain.TicketScan, error)
	UnsetFinal(ctx context.Context, scanID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements ticket scan operations. Scans never touch
// achievements.
type Service struct {
	tickets ticketRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new ticket Service.
func NewService(log *slog.Logger, tickets ticketRepo, tx txManager) *Service {
	return &Service{
		tickets: tickets,
		tx:      tx,
		log:     log.With("service", "ticket"),
	}
}
