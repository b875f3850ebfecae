package achievement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// RefreshMany refreshes each distinct boec independently with bounded
// concurrency. Serialization conflicts are retried; any other failure is
// reported in the result and does not stop the batch. The returned error is
// non-nil only when ctx is done before every boec was attempted.
func (s *Service) RefreshMany(ctx context.Context, boecIDs []uuid.UUID) (*BatchResult, error) {
	ids := dedupe(boecIDs)

	ctx, span := tracer.Start(ctx, "achievement.RefreshMany",
		trace.WithAttributes(attribute.Int("boecs.count", len(ids))),
	)
	defer span.End()

	var (
		mu  sync.Mutex
		res BatchResult
		g   errgroup.Group
	)
	g.SetLimit(s.cfg.BatchConcurrency)

	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			refreshed, err := s.refreshWithRetry(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			res.Processed++
			if err != nil {
				res.Failed = append(res.Failed, BoecFailure{BoecID: id, Err: err})
				s.log.WarnContext(ctx, "achievement refresh failed",
					slog.String("boec_id", id.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			res.Granted += len(refreshed.Granted)
			return nil
		})
	}
	_ = g.Wait()

	span.SetAttributes(
		attribute.Int("boecs.failed", len(res.Failed)),
		attribute.Int("achievements.granted", res.Granted),
	)

	s.log.InfoContext(ctx, "achievement batch refreshed",
		slog.Int("requested", len(ids)),
		slog.Int("processed", res.Processed),
		slog.Int("granted", res.Granted),
		slog.Int("failed", len(res.Failed)),
	)

	if err := ctx.Err(); err != nil && res.Processed < len(ids) {
		return &res, fmt.Errorf("refresh interrupted: %w", err)
	}
	return &res, nil
}

// RefreshAll refreshes every boec.
func (s *Service) RefreshAll(ctx context.Context) (*BatchResult, error) {
	ids, err := s.boecs.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boecs: %w", err)
	}
	return s.RefreshMany(ctx, ids)
}

func (s *Service) refreshWithRetry(ctx context.Context, boecID uuid.UUID) (*RefreshResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.PerBoecTimeout)
	defer cancel()

	attempts := max(s.cfg.RetryAttempts, 1)
	b := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), uint64(attempts-1)), ctx)

	return backoff.RetryWithData(func() (*RefreshResult, error) {
		res, err := s.Refresh(ctx, boecID)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}, b)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
