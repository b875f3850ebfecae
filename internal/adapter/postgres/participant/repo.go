// Package participant implements the event participant repository using
// PostgreSQL.
package participant

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

const returning = "RETURNING id, event_id, boec_id, brigade_id, worth, is_approved, created_at"

// Repo provides participant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new participant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByIDForUpdate returns a participant and locks its row.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	sql, args, err := postgres.Builder().
		Select("id", "event_id", "boec_id", "brigade_id", "worth", "is_approved", "created_at").
		From("participants").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get participant: %w", err)
	}

	p, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}
	return p, nil
}

// Create inserts a participant. A second registration of the same boec with
// the same worth is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	sql, args, err := postgres.Builder().
		Insert("participants").
		Columns("id", "event_id", "boec_id", "brigade_id", "worth", "is_approved", "created_at").
		Values(p.ID, p.EventID, p.BoecID, p.BrigadeID, string(p.Worth), p.IsApproved, p.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create participant: %w", err)
	}

	created, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "participant", p.ID)
	}
	return created, nil
}

// SetApproved updates the approval flag and returns the updated row.
func (r *Repo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*domain.Participant, error) {
	sql, args, err := postgres.Builder().
		Update("participants").
		Set("is_approved", approved).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set approved: %w", err)
	}

	p, err := scanParticipant(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "participant", id)
	}
	return p, nil
}

func scanParticipant(row pgx.Row) (*domain.Participant, error) {
	var p domain.Participant
	var worth string
	if err := row.Scan(&p.ID, &p.EventID, &p.BoecID, &p.BrigadeID, &worth, &p.IsApproved, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Worth = domain.ParticipantWorth(worth)
	return &p, nil
}
