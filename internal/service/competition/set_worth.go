package competition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// SetWorth updates the participant's worth and nomination ownership
// together. DEFAULT releases every nomination the participant owned. The
// participant's boecs are refreshed after commit.
func (s *Service) SetWorth(ctx context.Context, input SetWorthInput) (*domain.CompetitionParticipant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var p *domain.CompetitionParticipant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.competitions.GetParticipantForUpdate(txCtx, input.ParticipantID)
		if err != nil {
			return fmt.Errorf("lock participant: %w", err)
		}

		if input.Worth == domain.CompetitionWorthDefault {
			released, err := s.competitions.ReleaseOwnership(txCtx, p.ID)
			if err != nil {
				return fmt.Errorf("release ownership: %w", err)
			}
			if released > 0 {
				s.log.InfoContext(txCtx, "nomination ownership released",
					slog.String("participant_id", p.ID.String()),
					slog.Int("nominations", released),
				)
			}
		}

		if err := s.competitions.UpdateParticipantWorth(txCtx, []uuid.UUID{p.ID}, input.Worth); err != nil {
			return fmt.Errorf("update worth: %w", err)
		}
		p.Worth = input.Worth

		if input.NominationID != nil {
			n, err := s.competitions.GetNominationForUpdate(txCtx, *input.NominationID)
			if err != nil {
				return fmt.Errorf("lock nomination: %w", err)
			}
			if n.CompetitionID != p.CompetitionID {
				return domain.NewValidationError("nomination_id", "belongs to another competition")
			}
			if err := s.competitions.AddOwner(txCtx, n.ID, p.ID); err != nil {
				return fmt.Errorf("add owner: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "competition worth set",
		slog.String("participant_id", p.ID.String()),
		slog.String("worth", string(p.Worth)),
	)

	s.refresh(ctx, p.BoecIDs)
	return p, nil
}
