package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// DistributeQuotas replaces the event's quotas with a proportional split of
// TotalCount over eligible brigades, weighted by accepted seasons in the
// target year. It runs at SERIALIZABLE isolation; a serialization failure
// surfaces as domain.ErrConflict and may be retried.
func (s *Service) DistributeQuotas(ctx context.Context, input DistributeQuotasInput) ([]domain.EventQuota, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	year := domain.TargetSeasonYear(s.now())
	states := domain.EligibleStates(input.CandidatesAccepted)

	var quotas []domain.EventQuota
	err := s.tx.RunInTxSerializable(ctx, func(txCtx context.Context) error {
		ev, err := s.events.GetByIDForUpdate(txCtx, input.EventID)
		if err != nil {
			return fmt.Errorf("lock event: %w", err)
		}
		if ev.State != domain.EventStateQuotaCalculation {
			return domain.NewValidationError("state", "quotas can only be distributed in QUOTA_CALCULATION")
		}

		weights, err := s.brigades.EligibleWeights(txCtx, input.Scope(), states, year)
		if err != nil {
			return fmt.Errorf("eligible weights: %w", err)
		}

		quotas, err = domain.AllocateQuotas(input.EventID, input.TotalCount, weights)
		if err != nil {
			return err
		}

		if err := s.events.ReplaceQuotas(txCtx, input.EventID, quotas); err != nil {
			return fmt.Errorf("replace quotas: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "quotas distributed",
		slog.String("event_id", input.EventID.String()),
		slog.Int("total", input.TotalCount),
		slog.Int("brigades", len(quotas)),
		slog.Int("season_year", year),
	)

	return quotas, nil
}

// ListQuotas returns the event's current quotas.
func (s *Service) ListQuotas(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	quotas, err := s.events.ListQuotas(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list quotas: %w", err)
	}
	return quotas, nil
}
