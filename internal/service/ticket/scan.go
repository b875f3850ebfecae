package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// Scan records a final scan of the ticket. A ticket that already has a final
// scan is rejected with *domain.AlreadyUsedError carrying the time it was
// used, and no scan is written.
func (s *Service) Scan(ctx context.Context, ticketID uuid.UUID) (*ScanResult, error) {
	if ticketID == uuid.Nil {
		return nil, domain.NewValidationError("ticket_id", "required")
	}

	var res ScanResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.tickets.GetByIDForUpdate(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("lock ticket: %w", err)
		}
		res.Ticket = t

		final, err := s.tickets.LastFinalScan(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("last final scan: %w", err)
		}
		if final != nil {
			return &domain.AlreadyUsedError{TicketID: ticketID, ScannedAt: final.CreatedAt}
		}

		prev, err := s.tickets.LastScan(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("last scan: %w", err)
		}
		if prev != nil {
			at := prev.CreatedAt
			res.PreviousScanAt = &at
		}

		res.Scan, err = s.tickets.CreateScan(txCtx, &domain.TicketScan{
			ID:        uuid.New(),
			TicketID:  ticketID,
			IsFinal:   true,
			CreatedAt: time.Now().UTC(),
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			final, ferr := s.tickets.LastFinalScan(txCtx, ticketID)
			if ferr != nil {
				return fmt.Errorf("last final scan after conflict: %w", ferr)
			}
			if final == nil {
				return fmt.Errorf("create scan: %w", err)
			}
			return &domain.AlreadyUsedError{TicketID: ticketID, ScannedAt: final.CreatedAt}
		}
		if err != nil {
			return fmt.Errorf("create scan: %w", err)
		}
		return nil
	})
	if err != nil {
		var used *domain.AlreadyUsedError
		if errors.As(err, &used) {
			s.log.WarnContext(ctx, "ticket already used",
				slog.String("ticket_id", ticketID.String()),
				slog.Time("scanned_at", used.ScannedAt),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "ticket scanned",
		slog.String("ticket_id", ticketID.String()),
		slog.String("event_id", res.EventID().String()),
	)

	return &res, nil
}

// Unscan revokes the ticket's final scan so it can be scanned again. A
// ticket that was never used is a validation error.
func (s *Service) Unscan(ctx context.Context, ticketID uuid.UUID) error {
	if ticketID == uuid.Nil {
		return domain.NewValidationError("ticket_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.tickets.GetByIDForUpdate(txCtx, ticketID); err != nil {
			return fmt.Errorf("lock ticket: %w", err)
		}

		final, err := s.tickets.LastFinalScan(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("last final scan: %w", err)
		}
		if final == nil {
			return domain.NewValidationError("ticket_id", "ticket has not been used")
		}

		if err := s.tickets.UnsetFinal(txCtx, final.ID); err != nil {
			return fmt.Errorf("unset final: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "ticket unscanned", slog.String("ticket_id", ticketID.String()))
	return nil
}
