package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// MarkAllSeen marks every unseen activity of the boec as seen and resets the
// unread counter. It returns how many activities were marked.
func (s *Service) MarkAllSeen(ctx context.Context, boecID uuid.UUID) (int, error) {
	if boecID == uuid.Nil {
		return 0, domain.NewValidationError("boec_id", "required")
	}

	var marked int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.boecs.GetByIDForUpdate(txCtx, boecID); err != nil {
			return fmt.Errorf("lock boec: %w", err)
		}

		var err error
		marked, err = s.activities.MarkAllSeen(txCtx, boecID)
		if err != nil {
			return fmt.Errorf("mark seen: %w", err)
		}

		if err := s.boecs.ResetUnread(txCtx, boecID); err != nil {
			return fmt.Errorf("reset unread: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "activities marked seen",
		slog.String("boec_id", boecID.String()),
		slog.Int("marked", marked),
	)

	return marked, nil
}
