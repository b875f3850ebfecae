package achievement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/activity"
)

// Refresh grants every catalog achievement whose goal the boec has reached
// and that it does not hold yet, recording a NEW_ACHIEVEMENT activity per
// grant. The whole refresh runs under the boec's row lock, so concurrent
// refreshes of one boec serialize and each achievement is announced once.
func (s *Service) Refresh(ctx context.Context, boecID uuid.UUID) (*RefreshResult, error) {
	if boecID == uuid.Nil {
		return nil, domain.NewValidationError("boec_id", "required")
	}

	ctx, span := tracer.Start(ctx, "achievement.Refresh",
		trace.WithAttributes(attribute.String("boec.id", boecID.String())),
	)
	defer span.End()

	res := &RefreshResult{BoecID: boecID}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		res.Granted = nil

		if _, err := s.boecs.GetByIDForUpdate(txCtx, boecID); err != nil {
			return fmt.Errorf("lock boec: %w", err)
		}

		progress, err := s.progress.Progress(txCtx, boecID)
		if err != nil {
			return fmt.Errorf("compute progress: %w", err)
		}

		catalog, err := s.achievements.ListCatalog(txCtx)
		if err != nil {
			return fmt.Errorf("list catalog: %w", err)
		}

		held, err := s.achievements.GrantedIDs(txCtx, boecID)
		if err != nil {
			return fmt.Errorf("granted ids: %w", err)
		}

		for _, a := range catalog {
			if _, ok := held[a.ID]; ok || !a.Reached(progress) {
				continue
			}

			inserted, err := s.achievements.Grant(txCtx, a.ID, boecID)
			if err != nil {
				return fmt.Errorf("grant %s: %w", a.ID, err)
			}
			if !inserted {
				continue
			}

			achievementID := a.ID
			_, err = s.recorder.Record(txCtx, boecID, activity.RecordInput{
				Type:          domain.ActivityTypeNewAchievement,
				AchievementID: &achievementID,
			})
			if err != nil {
				return fmt.Errorf("record achievement %s: %w", a.ID, err)
			}
			res.Granted = append(res.Granted, a)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("achievements.granted", len(res.Granted)))
	if len(res.Granted) > 0 {
		s.log.InfoContext(ctx, "achievements granted",
			slog.String("boec_id", boecID.String()),
			slog.Int("count", len(res.Granted)),
		)
	}

	return res, nil
}
