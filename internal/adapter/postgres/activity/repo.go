// Package activity implements the activity feed and warning repository
// using PostgreSQL.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateWarning inserts a warning.
func (r *Repo) CreateWarning(ctx context.Context, w *domain.Warning) (*domain.Warning, error) {
	sql, args, err := postgres.Builder().
		Insert("warnings").
		Columns("id", "text", "created_at").
		Values(w.ID, w.Text, w.CreatedAt).
		Suffix("RETURNING id, text, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create warning: %w", err)
	}

	var out domain.Warning
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&out.ID, &out.Text, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "warning", w.ID)
	}
	return &out, nil
}

// Create appends an activity. The row must reference exactly one of a
// warning or an achievement.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	sql, args, err := postgres.Builder().
		Insert("activities").
		Columns("id", "boec_id", "type", "warning_id", "achievement_id", "seen", "created_at").
		Values(a.ID, a.BoecID, string(a.Type), a.WarningID, a.AchievementID, a.Seen, a.CreatedAt).
		Suffix("RETURNING id, boec_id, type, warning_id, achievement_id, seen, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create activity: %w", err)
	}

	var out domain.Activity
	var typ string
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(
		&out.ID, &out.BoecID, &typ, &out.WarningID, &out.AchievementID, &out.Seen, &out.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	out.Type = domain.ActivityType(typ)
	return &out, nil
}

// MarkAllSeen marks every unseen activity of the boec as seen and returns
// how many were marked.
func (r *Repo) MarkAllSeen(ctx context.Context, boecID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Update("activities").
		Set("seen", true).
		Where(squirrel.Eq{"boec_id": boecID, "seen": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark all seen: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "activities of boec", boecID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// CountUnseen returns the number of unseen activities of the boec.
func (r *Repo) CountUnseen(ctx context.Context, boecID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("activities").
		Where(squirrel.Eq{"boec_id": boecID, "seen": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count unseen: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "activities of boec", boecID)
	}
	return int(n), nil
}

// List returns the boec's activities newest first with their warning or
// achievement attached. A non-nil seen filters by the seen flag.
func (r *Repo) List(ctx context.Context, boecID uuid.UUID, seen *bool) ([]domain.Activity, error) {
	q := postgres.Builder().
		Select(
			"act.id", "act.boec_id", "act.type", "act.seen", "act.created_at",
			"w.id", "w.text", "w.created_at",
			"a.id", "a.title", "a.description", "a.type", "a.goal", "a.created_at",
		).
		From("activities act").
		LeftJoin("warnings w ON w.id = act.warning_id").
		LeftJoin("achievements a ON a.id = act.achievement_id").
		Where(squirrel.Eq{"act.boec_id": boecID}).
		OrderBy("act.created_at DESC", "act.id DESC")
	if seen != nil {
		q = q.Where(squirrel.Eq{"act.seen": *seen})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "activities of boec", boecID)
	}
	out, err := pgx.CollectRows(rows, scanListed)
	if err != nil {
		return nil, postgres.MapError(err, "activities of boec", boecID)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanListed(row pgx.CollectableRow) (domain.Activity, error) {
	var (
		act    domain.Activity
		typ    string
		wID    *uuid.UUID
		wText  *string
		wAt    *time.Time
		aID    *uuid.UUID
		aTitle *string
		aDesc  *string
		aType  *string
		aGoal  *int
		aAt    *time.Time
	)
	err := row.Scan(
		&act.ID, &act.BoecID, &typ, &act.Seen, &act.CreatedAt,
		&wID, &wText, &wAt,
		&aID, &aTitle, &aDesc, &aType, &aGoal, &aAt,
	)
	if err != nil {
		return act, err
	}
	act.Type = domain.ActivityType(typ)

	if wID != nil {
		act.WarningID = wID
		act.Warning = &domain.Warning{ID: *wID, Text: *wText, CreatedAt: *wAt}
	}
	if aID != nil {
		act.AchievementID = aID
		act.Achievement = &domain.Achievement{
			ID:          *aID,
			Title:       *aTitle,
			Description: *aDesc,
			Type:        domain.AchievementType(*aType),
			Goal:        *aGoal,
			CreatedAt:   *aAt,
		}
	}
	return act, nil
}
