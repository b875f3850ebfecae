package competition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// DeleteNomination deletes the nomination. Its former owners keep
// INVOLVEMENT worth; their boecs are refreshed after commit.
func (s *Service) DeleteNomination(ctx context.Context, nominationID uuid.UUID) error {
	if nominationID == uuid.Nil {
		return domain.NewValidationError("nomination_id", "required")
	}

	var boecIDs []uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.competitions.GetNominationForUpdate(txCtx, nominationID)
		if err != nil {
			return fmt.Errorf("lock nomination: %w", err)
		}

		if err := s.competitions.UpdateParticipantWorth(txCtx, n.OwnerIDs, domain.CompetitionWorthInvolvement); err != nil {
			return fmt.Errorf("keep owners involved: %w", err)
		}

		boecIDs, err = s.competitions.BoecIDs(txCtx, n.OwnerIDs)
		if err != nil {
			return fmt.Errorf("owner boecs: %w", err)
		}

		if err := s.competitions.DeleteNomination(txCtx, nominationID); err != nil {
			return fmt.Errorf("delete nomination: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "nomination deleted",
		slog.String("nomination_id", nominationID.String()),
		slog.Int("affected_boecs", len(boecIDs)),
	)

	s.refresh(ctx, boecIDs)
	return nil
}
