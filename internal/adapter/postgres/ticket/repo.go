// Package ticket implements the ticket and scan-log repository using
// PostgreSQL.
package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

// Repo provides ticket persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ticket repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByIDForUpdate returns a ticket and locks its row so scans of the same
// ticket serialize.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	sql, args, err := postgres.Builder().
		Select("id", "event_id", "boec_id", "code", "created_at").
		From("tickets").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ticket: %w", err)
	}

	var t domain.Ticket
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&t.ID, &t.EventID, &t.BoecID, &t.Code, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "ticket", id)
	}
	return &t, nil
}

// LastScan returns the most recent scan of the ticket, final or not, or nil
// when the ticket was never scanned.
func (r *Repo) LastScan(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error) {
	return r.lastScan(ctx, ticketID, squirrel.Eq{"ticket_id": ticketID})
}

// LastFinalScan returns the final scan of the ticket, or nil when the ticket
// is unused.
func (r *Repo) LastFinalScan(ctx context.Context, ticketID uuid.UUID) (*domain.TicketScan, error) {
	return r.lastScan(ctx, ticketID, squirrel.Eq{"ticket_id": ticketID, "is_final": true})
}

func (r *Repo) lastScan(ctx context.Context, ticketID uuid.UUID, where squirrel.Eq) (*domain.TicketScan, error) {
	sql, args, err := postgres.Builder().
		Select("id", "ticket_id", "is_final", "created_at").
		From("ticket_scans").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build last scan: %w", err)
	}

	var s domain.TicketScan
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&s.ID, &s.TicketID, &s.IsFinal, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "ticket scan", ticketID)
	}
	return &s, nil
}

// CreateScan appends a scan. A second final scan of the same ticket is
// skipped by the database and reported as domain.ErrAlreadyExists. The
// conflict does not abort the surrounding transaction, so the caller can
// still read the existing final scan.
func (r *Repo) CreateScan(ctx context.Context, s *domain.TicketScan) (*domain.TicketScan, error) {
	sql, args, err := postgres.Builder().
		Insert("ticket_scans").
		Columns("id", "ticket_id", "is_final", "created_at").
		Values(s.ID, s.TicketID, s.IsFinal, s.CreatedAt).
		Suffix("ON CONFLICT (ticket_id) WHERE is_final DO NOTHING RETURNING id, ticket_id, is_final, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create scan: %w", err)
	}

	var out domain.TicketScan
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).
		Scan(&out.ID, &out.TicketID, &out.IsFinal, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ticket %s final scan: %w", s.TicketID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "ticket scan", s.TicketID)
	}
	return &out, nil
}

// UnsetFinal marks a scan as non-final.
func (r *Repo) UnsetFinal(ctx context.Context, scanID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update("ticket_scans").
		Set("is_final", false).
		Where(squirrel.Eq{"id": scanID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build unset final: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "ticket scan", scanID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ticket scan %s: %w", scanID, domain.ErrNotFound)
	}
	return nil
}
