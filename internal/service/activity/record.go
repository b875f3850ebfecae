package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// Record appends an activity to the boec's feed and increments its unread
// counter in the same transaction. When called inside an outer transaction
// it joins it.
func (s *Service) Record(ctx context.Context, boecID uuid.UUID, input RecordInput) (*domain.Activity, error) {
	if boecID == uuid.Nil {
		return nil, domain.NewValidationError("boec_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var created *domain.Activity
	var unread int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.boecs.GetByIDForUpdate(txCtx, boecID); err != nil {
			return fmt.Errorf("lock boec: %w", err)
		}

		act := &domain.Activity{
			ID:            uuid.New(),
			BoecID:        boecID,
			Type:          input.Type,
			AchievementID: input.AchievementID,
			CreatedAt:     now,
		}

		if input.AchievementID == nil {
			w, err := s.activities.CreateWarning(txCtx, &domain.Warning{
				ID:        uuid.New(),
				Text:      strings.TrimSpace(input.WarningText),
				CreatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("create warning: %w", err)
			}
			act.WarningID = &w.ID
			act.Warning = w
		}

		var err error
		created, err = s.activities.Create(txCtx, act)
		if err != nil {
			return fmt.Errorf("create activity: %w", err)
		}
		created.Warning = act.Warning

		unread, err = s.boecs.IncrementUnread(txCtx, boecID, 1)
		if err != nil {
			return fmt.Errorf("increment unread: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity recorded",
		slog.String("boec_id", boecID.String()),
		slog.String("activity_id", created.ID.String()),
		slog.String("type", string(created.Type)),
		slog.Int("unread", unread),
	)

	return created, nil
}
