// Package boec implements the boec repository using PostgreSQL.
// The boec row doubles as the per-person lock for achievement refresh and
// the activity ledger.
package boec

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

var columns = []string{
	"id", "first_name", "last_name", "middle_name", "date_of_birth",
	"vk_id", "telegram_id", "unread_activity_count", "created_at",
}

// Repo provides boec persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new boec repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a boec by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Boec, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id, "")
}

// GetByIDForUpdate returns a boec and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Boec, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id, "FOR UPDATE")
}

// GetByVKID returns the boec bound to a VK user id.
func (r *Repo) GetByVKID(ctx context.Context, vkID int64) (*domain.Boec, error) {
	return r.getOne(ctx, squirrel.Eq{"vk_id": vkID}, vkID, "")
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id any, suffix string) (*domain.Boec, error) {
	b := postgres.Builder().Select(columns...).From("boecs").Where(where)
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build boec query: %w", err)
	}

	boec, err := scanBoec(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "boec", id)
	}
	return boec, nil
}

// ListIDs returns every boec id ordered by creation time.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().Select("id").From("boecs").OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list boec ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list boec ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list boec ids: %w", err)
	}
	return ids, nil
}

// LastSeasonBrigade returns the brigade of the boec's most recent season,
// or nil when the boec has no seasons.
func (r *Repo) LastSeasonBrigade(ctx context.Context, boecID uuid.UUID) (*uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Select("brigade_id").
		From("seasons").
		Where(squirrel.Eq{"boec_id": boecID}).
		OrderBy("year DESC", "created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build last season query: %w", err)
	}

	var brigadeID uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&brigadeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "season of boec", boecID)
	}
	return &brigadeID, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a boec and returns the stored row.
func (r *Repo) Create(ctx context.Context, b *domain.Boec) (*domain.Boec, error) {
	sql, args, err := postgres.Builder().
		Insert("boecs").
		Columns("id", "first_name", "last_name", "middle_name", "date_of_birth", "vk_id", "telegram_id", "created_at").
		Values(b.ID, b.FirstName, b.LastName, b.MiddleName, b.DateOfBirth, b.VKID, b.TelegramID, b.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create boec: %w", err)
	}

	created, err := scanBoec(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "boec", b.ID)
	}
	return created, nil
}

// IncrementUnread adds delta to the unread activity counter and returns the
// new value.
func (r *Repo) IncrementUnread(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	sql, args, err := postgres.Builder().
		Update("boecs").
		Set("unread_activity_count", squirrel.Expr("unread_activity_count + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING unread_activity_count").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build increment unread: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "boec", id)
	}
	return count, nil
}

// SetUnread overwrites the unread activity counter.
func (r *Repo) SetUnread(ctx context.Context, id uuid.UUID, count int) error {
	sql, args, err := postgres.Builder().
		Update("boecs").
		Set("unread_activity_count", count).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set unread: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "boec", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("boec %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ResetUnread sets the unread activity counter to zero.
func (r *Repo) ResetUnread(ctx context.Context, id uuid.UUID) error {
	return r.SetUnread(ctx, id, 0)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanBoec(row pgx.Row) (*domain.Boec, error) {
	var b domain.Boec
	err := row.Scan(
		&b.ID, &b.FirstName, &b.LastName, &b.MiddleName, &b.DateOfBirth,
		&b.VKID, &b.TelegramID, &b.UnreadActivityCount, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
