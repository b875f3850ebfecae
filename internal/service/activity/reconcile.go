package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// Reconcile recomputes the unread counter from the feed and stores it when it
// has drifted.
func (s *Service) Reconcile(ctx context.Context, boecID uuid.UUID) (*ReconcileResult, error) {
	if boecID == uuid.Nil {
		return nil, domain.NewValidationError("boec_id", "required")
	}

	var res ReconcileResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.boecs.GetByIDForUpdate(txCtx, boecID)
		if err != nil {
			return fmt.Errorf("lock boec: %w", err)
		}
		res.Previous = b.UnreadActivityCount

		res.Actual, err = s.activities.CountUnseen(txCtx, boecID)
		if err != nil {
			return fmt.Errorf("count unseen: %w", err)
		}

		if !res.Changed() {
			return nil
		}
		if err := s.boecs.SetUnread(txCtx, boecID, res.Actual); err != nil {
			return fmt.Errorf("set unread: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Changed() {
		s.log.WarnContext(ctx, "unread counter drift corrected",
			slog.String("boec_id", boecID.String()),
			slog.Int("previous", res.Previous),
			slog.Int("actual", res.Actual),
		)
	}

	return &res, nil
}
