// Package competition implements the competition participant and
// nomination repository using PostgreSQL.
package competition

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

// Repo provides competition persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new competition repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Competition participants
// ---------------------------------------------------------------------------

// GetParticipantForUpdate returns a competition participant with its boec
// set and locks the participant row.
func (r *Repo) GetParticipantForUpdate(ctx context.Context, id uuid.UUID) (*domain.CompetitionParticipant, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id", "competition_id", "title", "worth", "created_at").
		From("competition_participants").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get competition participant: %w", err)
	}

	var p domain.CompetitionParticipant
	var worth string
	if err := q.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CompetitionID, &p.Title, &worth, &p.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "competition_participant", id)
	}
	p.Worth = domain.CompetitionWorth(worth)

	boecs, err := r.BoecIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	p.BoecIDs = boecs
	return &p, nil
}

// UpdateParticipantWorth sets the worth of one or more participants.
func (r *Repo) UpdateParticipantWorth(ctx context.Context, ids []uuid.UUID, worth domain.CompetitionWorth) error {
	if len(ids) == 0 {
		return nil
	}
	sql, args, err := postgres.Builder().
		Update("competition_participants").
		Set("worth", string(worth)).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update worth: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "competition_participant", ids[0])
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("competition_participant %s: %w", ids[0], domain.ErrNotFound)
	}
	return nil
}

// BoecIDs returns the distinct boecs that make up the given participants.
func (r *Repo) BoecIDs(ctx context.Context, participantIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(participantIDs) == 0 {
		return nil, nil
	}
	sql, args, err := postgres.Builder().
		Select("DISTINCT boec_id").
		From("competition_participant_boecs").
		Where(squirrel.Eq{"participant_id": participantIDs}).
		OrderBy("boec_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build participant boecs: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("participant boecs: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("participant boecs: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Nominations
// ---------------------------------------------------------------------------

// GetNominationForUpdate returns a nomination with its owners and locks the
// nomination row.
func (r *Repo) GetNominationForUpdate(ctx context.Context, id uuid.UUID) (*domain.Nomination, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("id", "competition_id", "title", "is_rated", "sport_place", "created_at").
		From("nominations").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get nomination: %w", err)
	}

	var n domain.Nomination
	err = q.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.CompetitionID, &n.Title, &n.IsRated, &n.SportPlace, &n.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "nomination", id)
	}

	sql, args, err = postgres.Builder().
		Select("participant_id").
		From("nomination_owners").
		Where(squirrel.Eq{"nomination_id": id}).
		OrderBy("participant_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build nomination owners: %w", err)
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("nomination owners: %w", err)
	}
	n.OwnerIDs, err = pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("nomination owners: %w", err)
	}
	return &n, nil
}

// AddOwner makes the participant an owner of the nomination. Adding an
// existing owner is a no-op.
func (r *Repo) AddOwner(ctx context.Context, nominationID, participantID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Insert("nomination_owners").
		Columns("nomination_id", "participant_id").
		Values(nominationID, participantID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add owner: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "nomination", nominationID)
	}
	return nil
}

// ReleaseOwnership removes the participant from every nomination it owns.
// Returns the number of released nominations.
func (r *Repo) ReleaseOwnership(ctx context.Context, participantID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Delete("nomination_owners").
		Where(squirrel.Eq{"participant_id": participantID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build release ownership: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "competition_participant", participantID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteNomination deletes a nomination together with its ownership rows.
func (r *Repo) DeleteNomination(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete("nominations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete nomination: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "nomination", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("nomination %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
