package participant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/activity"
)

// Approve approves the participant and notifies the boec with an INFO
// activity. Approving an approved participant changes nothing.
func (s *Service) Approve(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error) {
	return s.setApproval(ctx, participantID, true)
}

// Unapprove withdraws approval and notifies the boec with a WARNING activity.
//
// When the event has already PASSED, either change moves the boec's
// participation counts, so its achievements are refreshed after commit.
func (s *Service) Unapprove(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error) {
	return s.setApproval(ctx, participantID, false)
}

func (s *Service) setApproval(ctx context.Context, participantID uuid.UUID, approved bool) (*domain.Participant, error) {
	if participantID == uuid.Nil {
		return nil, domain.NewValidationError("participant_id", "required")
	}

	var (
		result  *domain.Participant
		changed bool
		passed  bool
		boecID  uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.participants.GetByIDForUpdate(txCtx, participantID)
		if err != nil {
			return fmt.Errorf("lock participant: %w", err)
		}
		if p.IsApproved == approved {
			result = p
			return nil
		}

		ev, err := s.events.GetByID(txCtx, p.EventID)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		result, err = s.participants.SetApproved(txCtx, participantID, approved)
		if err != nil {
			return fmt.Errorf("set approved: %w", err)
		}

		if _, err := s.recorder.Record(txCtx, p.BoecID, approvalNotice(ev, approved)); err != nil {
			return fmt.Errorf("record notice: %w", err)
		}
		changed = true
		passed = ev.State == domain.EventStatePassed
		boecID = p.BoecID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "participant approval changed",
			slog.String("participant_id", participantID.String()),
			slog.Bool("approved", approved),
		)
	}
	if passed {
		s.refresh(ctx, boecID)
	}

	return result, nil
}

// refresh re-evaluates goals for a boec whose counts just changed. Failures
// are logged; the approval itself is already committed.
func (s *Service) refresh(ctx context.Context, boecID uuid.UUID) {
	res, err := s.refresher.RefreshMany(ctx, []uuid.UUID{boecID})
	if err != nil {
		s.log.ErrorContext(ctx, "refresh achievements",
			slog.String("boec_id", boecID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if len(res.Failed) > 0 {
		s.log.WarnContext(ctx, "achievement refresh failed",
			slog.String("boec_id", boecID.String()),
			slog.String("error", res.Failed[0].Err.Error()),
		)
	}
}

func approvalNotice(ev *domain.Event, approved bool) activity.RecordInput {
	if approved {
		return activity.RecordInput{
			Type:        domain.ActivityTypeInfo,
			WarningText: fmt.Sprintf("You have been approved for %q", ev.Title),
		}
	}
	return activity.RecordInput{
		Type:        domain.ActivityTypeWarning,
		WarningText: fmt.Sprintf("Your approval for %q has been withdrawn", ev.Title),
	}
}
