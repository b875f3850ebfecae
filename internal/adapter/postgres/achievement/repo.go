// Package achievement implements the achievement catalog and grant
// repository using PostgreSQL. Grants are append-only.
package achievement

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

// Repo provides achievement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new achievement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

// ListCatalog returns every achievement in creation order.
func (r *Repo) ListCatalog(ctx context.Context) ([]domain.Achievement, error) {
	sql, args, err := postgres.Builder().
		Select("id", "title", "description", "type", "goal", "created_at", "0").
		From("achievements").
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list catalog: %w", err)
	}
	return r.collect(ctx, sql, args)
}

// ListRanked returns every achievement with its holder count, most held
// first, newer first among equals.
func (r *Repo) ListRanked(ctx context.Context) ([]domain.Achievement, error) {
	sql, args, err := postgres.Builder().
		Select("a.id", "a.title", "a.description", "a.type", "a.goal", "a.created_at", "count(g.boec_id) AS holders").
		From("achievements a").
		LeftJoin("achievement_grants g ON g.achievement_id = a.id").
		GroupBy("a.id").
		OrderBy("holders DESC", "a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ranked: %w", err)
	}
	return r.collect(ctx, sql, args)
}

func (r *Repo) collect(ctx context.Context, sql string, args []any) ([]domain.Achievement, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Achievement, error) {
		var a domain.Achievement
		var typ string
		var holders int64
		if err := row.Scan(&a.ID, &a.Title, &a.Description, &typ, &a.Goal, &a.CreatedAt, &holders); err != nil {
			return a, err
		}
		a.Type = domain.AchievementType(typ)
		a.HoldersCount = int(holders)
		return a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Grants
// ---------------------------------------------------------------------------

// GrantedIDs returns the ids of achievements the boec already holds.
func (r *Repo) GrantedIDs(ctx context.Context, boecID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	sql, args, err := postgres.Builder().
		Select("achievement_id").
		From("achievement_grants").
		Where(squirrel.Eq{"boec_id": boecID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build granted ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "grants of boec", boecID)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "grants of boec", boecID)
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// Grant adds the boec to the achievement's holders. It reports false when
// the grant already existed, so concurrent granters never both succeed.
func (r *Repo) Grant(ctx context.Context, achievementID, boecID uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert("achievement_grants").
		Columns("achievement_id", "boec_id").
		Values(achievementID, boecID).
		Suffix("ON CONFLICT (achievement_id, boec_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build grant: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "achievement grant", achievementID)
	}
	return tag.RowsAffected() == 1, nil
}
