package participant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// Register adds the boec to the event. Volunteers and organizers, and anyone
// at a non-ticketed event, are approved immediately.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Participant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	worth := input.worth()

	var created *domain.Participant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ev, err := s.events.GetByID(txCtx, input.EventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if ev.State == domain.EventStateCancelled || ev.State == domain.EventStatePassed {
			return domain.NewValidationError("event_id", "registration is closed")
		}

		if _, err := s.boecs.GetByID(txCtx, input.BoecID); err != nil {
			return fmt.Errorf("get boec: %w", err)
		}

		brigadeID := input.BrigadeID
		if brigadeID == nil {
			brigadeID, err = s.boecs.LastSeasonBrigade(txCtx, input.BoecID)
			if err != nil {
				return fmt.Errorf("last season brigade: %w", err)
			}
		}

		created, err = s.participants.Create(txCtx, &domain.Participant{
			ID:         uuid.New(),
			EventID:    input.EventID,
			BoecID:     input.BoecID,
			BrigadeID:  brigadeID,
			Worth:      worth,
			IsApproved: worth != domain.ParticipantWorthDefault || !ev.IsTicketed,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create participant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "participant registered",
		slog.String("event_id", input.EventID.String()),
		slog.String("boec_id", input.BoecID.String()),
		slog.String("worth", string(worth)),
		slog.Bool("approved", created.IsApproved),
	)

	return created, nil
}
