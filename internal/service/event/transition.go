package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// Transition applies a lifecycle transition to the event under its row lock.
// Failed guards leave the event unchanged and return an
// *domain.InvalidTransitionError. Entering PASSED starts a background
// achievement refresh for everyone who took part.
func (s *Service) Transition(ctx context.Context, eventID uuid.UUID, name domain.Transition) (*TransitionResult, error) {
	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}

	ctx, span := tracer.Start(ctx, "event.Transition", trace.WithAttributes(
		attribute.String("event.id", eventID.String()),
		attribute.String("event.transition", string(name)),
	))
	defer span.End()

	var res TransitionResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ev, err := s.events.GetByIDForUpdate(txCtx, eventID)
		if err != nil {
			return fmt.Errorf("lock event: %w", err)
		}
		res.Event = ev
		res.Previous = ev.State

		rule, noop, err := domain.PlanTransition(ev.State, name)
		if err != nil {
			return err
		}
		if noop {
			res.Noop = true
			return nil
		}

		switch rule.Guard {
		case domain.GuardQuotasMatchParticipants:
			if err := s.checkQuotas(txCtx, ev, name); err != nil {
				return err
			}
		case domain.GuardIsTicketed:
			if !ev.IsTicketed {
				return &domain.InvalidTransitionError{Transition: name, From: ev.State, Reason: "event is not ticketed"}
			}
		}

		if rule.Name == domain.TransitionGenerateTickets {
			res.TicketCodesAssigned, err = s.generateTickets(txCtx, ev, name)
			if err != nil {
				return err
			}
		}

		if err := s.events.UpdateState(txCtx, eventID, rule.To); err != nil {
			return fmt.Errorf("update state: %w", err)
		}
		ev.State = rule.To
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	res.Available = domain.AvailableTransitions(res.Event.State)

	if res.Noop {
		return &res, nil
	}

	s.log.InfoContext(ctx, "event transitioned",
		slog.String("event_id", eventID.String()),
		slog.String("transition", string(name)),
		slog.String("from", string(res.Previous)),
		slog.String("to", string(res.Event.State)),
	)

	if res.Event.State == domain.EventStatePassed {
		s.refreshParticipants(ctx, eventID)
	}

	return &res, nil
}

func (s *Service) checkQuotas(ctx context.Context, ev *domain.Event, name domain.Transition) error {
	if !ev.IsTicketed {
		return nil
	}

	quotas, err := s.events.ListQuotas(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("list quotas: %w", err)
	}
	allowed := make(map[uuid.UUID]int, len(quotas))
	for _, q := range quotas {
		allowed[q.BrigadeID] = q.Count
	}

	approved, err := s.events.ApprovedDefaultCounts(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("approved counts: %w", err)
	}

	if violations := domain.CheckQuotas(ev.IsTicketed, allowed, approved); len(violations) > 0 {
		return &domain.InvalidTransitionError{
			Transition: name,
			From:       ev.State,
			Reason:     "approved participants exceed quotas",
			Violations: violations,
		}
	}
	return nil
}

func (s *Service) generateTickets(ctx context.Context, ev *domain.Event, name domain.Transition) (int, error) {
	n, err := s.events.CountTickets(ctx, ev.ID)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	if n == 0 {
		return 0, &domain.InvalidTransitionError{Transition: name, From: ev.State, Reason: "event has no tickets"}
	}

	assigned, err := s.events.AssignTicketCodes(ctx, ev.ID)
	if err != nil {
		return 0, fmt.Errorf("assign ticket codes: %w", err)
	}
	return assigned, nil
}

// refreshParticipants re-evaluates achievements of the event's participants
// after the request has returned. The request context only contributes its
// values; cancellation is replaced by the configured background timeout.
func (s *Service) refreshParticipants(ctx context.Context, eventID uuid.UUID) {
	bg := context.WithoutCancel(ctx)
	var cancel context.CancelFunc
	if s.cfg.BackgroundTimeout > 0 {
		bg, cancel = context.WithTimeout(bg, s.cfg.BackgroundTimeout)
	} else {
		bg, cancel = context.WithCancel(bg)
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		defer cancel()

		ids, err := s.events.RefreshTargets(bg, eventID)
		if err != nil {
			s.log.ErrorContext(bg, "load refresh targets",
				slog.String("event_id", eventID.String()),
				slog.String("error", err.Error()),
			)
			return
		}

		res, err := s.refresher.RefreshMany(bg, ids)
		if err != nil {
			s.log.ErrorContext(bg, "refresh event participants",
				slog.String("event_id", eventID.String()),
				slog.String("error", err.Error()),
			)
			return
		}

		s.log.InfoContext(bg, "event participants refreshed",
			slog.String("event_id", eventID.String()),
			slog.Int("boecs", res.Processed),
			slog.Int("granted", res.Granted),
			slog.Int("failed", len(res.Failed)),
		)
	}()
}
