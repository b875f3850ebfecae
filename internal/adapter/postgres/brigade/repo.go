// Package brigade implements the brigade repository using PostgreSQL.
package brigade

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

const returning = "RETURNING id, title, area_id, shtab_id, state, created_at"

// Repo provides brigade persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new brigade repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a brigade by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brigade, error) {
	sql, args, err := postgres.Builder().
		Select("id", "title", "area_id", "shtab_id", "state", "created_at").
		From("brigades").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get brigade: %w", err)
	}

	b, err := scanBrigade(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "brigade", id)
	}
	return b, nil
}

// UpdateState sets the brigade state and returns the updated row.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, state domain.BrigadeState) (*domain.Brigade, error) {
	sql, args, err := postgres.Builder().
		Update("brigades").
		Set("state", string(state)).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update brigade state: %w", err)
	}

	b, err := scanBrigade(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "brigade", id)
	}
	return b, nil
}

// EligibleWeights returns every brigade in scope whose state is one of
// states, with its count of accepted non-candidate seasons in year.
// Brigades without such seasons are returned with weight 0.
func (r *Repo) EligibleWeights(ctx context.Context, scope domain.BrigadeScope, states []domain.BrigadeState, year int) ([]domain.BrigadeWeight, error) {
	stateNames := make([]string, len(states))
	for i, s := range states {
		stateNames[i] = string(s)
	}

	q := postgres.Builder().
		Select("b.id", "count(s.id)").
		From("brigades b").
		LeftJoin("seasons s ON s.brigade_id = b.id AND s.year = ? AND s.is_accepted AND NOT s.is_candidate", year).
		Where(squirrel.Eq{"b.state": stateNames}).
		GroupBy("b.id").
		OrderBy("b.id")
	if scope.ShtabID != nil {
		q = q.Where(squirrel.Eq{"b.shtab_id": *scope.ShtabID})
	}
	if scope.AreaID != nil {
		q = q.Where(squirrel.Eq{"b.area_id": *scope.AreaID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build eligible weights: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "brigade weights", year)
	}
	weights, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BrigadeWeight, error) {
		var w domain.BrigadeWeight
		var n int64
		if err := row.Scan(&w.BrigadeID, &n); err != nil {
			return w, err
		}
		w.Weight = int(n)
		return w, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "brigade weights", year)
	}
	return weights, nil
}

func scanBrigade(row pgx.Row) (*domain.Brigade, error) {
	var b domain.Brigade
	var state string
	if err := row.Scan(&b.ID, &b.Title, &b.AreaID, &b.ShtabID, &state, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.State = domain.BrigadeState(state)
	return &b, nil
}
