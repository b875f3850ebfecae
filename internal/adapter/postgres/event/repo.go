// Package event implements the event, quota and ticket-code repository using
// PostgreSQL.
package event

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

var columns = []string{
	"id", "title", "description", "location", "shtab_id", "start_date",
	"worth", "state", "is_ticketed", "is_canonical", "visibility", "created_at",
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns an event and locks its row for the surrounding
// transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.Event, error) {
	q := postgres.Builder().Select(columns...).From("events").Where(squirrel.Eq{"id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event: %w", err)
	}

	e, err := scanEvent(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}
	return e, nil
}

// UpdateState persists a new lifecycle state.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, state domain.EventState) error {
	sql, args, err := postgres.Builder().
		Update("events").
		Set("state", string(state)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update event state: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RefreshTargets returns the distinct boecs whose progress depends on the
// event: approved participants and members of competition participants in
// the event's rated competitions.
func (r *Repo) RefreshTargets(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	const sql = `
SELECT boec_id FROM participants WHERE event_id = $1 AND is_approved
UNION
SELECT cpb.boec_id
  FROM competition_participant_boecs cpb
  JOIN competition_participants cp ON cp.id = cpb.participant_id
  JOIN competitions c ON c.id = cp.competition_id
 WHERE c.event_id = $1 AND NOT c.ratingless`

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, eventID)
	if err != nil {
		return nil, postgres.MapError(err, "event refresh targets", eventID)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "event refresh targets", eventID)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Quotas
// ---------------------------------------------------------------------------

// ListQuotas returns the event's quotas ordered by brigade.
func (r *Repo) ListQuotas(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error) {
	sql, args, err := postgres.Builder().
		Select("event_id", "brigade_id", "count").
		From("event_quotas").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("brigade_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list quotas: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "event quotas", eventID)
	}
	quotas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventQuota, error) {
		var q domain.EventQuota
		err := row.Scan(&q.EventID, &q.BrigadeID, &q.Count)
		return q, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "event quotas", eventID)
	}
	return quotas, nil
}

// ReplaceQuotas deletes every quota of the event and inserts quotas in their
// place. Callers run it inside one transaction.
func (r *Repo) ReplaceQuotas(ctx context.Context, eventID uuid.UUID, quotas []domain.EventQuota) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete("event_quotas").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete quotas: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "event quotas", eventID)
	}

	if len(quotas) == 0 {
		return nil
	}

	ins := postgres.Builder().Insert("event_quotas").Columns("event_id", "brigade_id", "count")
	for _, quota := range quotas {
		ins = ins.Values(eventID, quota.BrigadeID, quota.Count)
	}
	sql, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert quotas: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "event quotas", eventID)
	}
	return nil
}

// ApprovedDefaultCounts returns the number of approved DEFAULT participants
// per brigade. Participants without a brigade are not counted.
func (r *Repo) ApprovedDefaultCounts(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error) {
	sql, args, err := postgres.Builder().
		Select("brigade_id", "count(*)").
		From("participants").
		Where(squirrel.Eq{
			"event_id":    eventID,
			"is_approved": true,
			"worth":       string(domain.ParticipantWorthDefault),
		}).
		Where(squirrel.NotEq{"brigade_id": nil}).
		GroupBy("brigade_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build approved counts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "approved participants", eventID)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var brigadeID uuid.UUID
		var n int64
		if err := rows.Scan(&brigadeID, &n); err != nil {
			return nil, fmt.Errorf("scan approved count: %w", err)
		}
		counts[brigadeID] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "approved participants", eventID)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Tickets
// ---------------------------------------------------------------------------

// CountTickets returns the number of tickets issued for the event.
func (r *Repo) CountTickets(ctx context.Context, eventID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("tickets").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count tickets: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "event tickets", eventID)
	}
	return int(n), nil
}

// AssignTicketCodes gives every ticket of the event that has no code a fresh
// random code. Returns the number of tickets updated.
func (r *Repo) AssignTicketCodes(ctx context.Context, eventID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Update("tickets").
		Set("code", squirrel.Expr("gen_random_uuid()")).
		Where(squirrel.Eq{"event_id": eventID, "code": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build assign ticket codes: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "event tickets", eventID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	var worth, state string
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.ShtabID, &e.StartDate,
		&worth, &state, &e.IsTicketed, &e.IsCanonical, &e.Visibility, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Worth = domain.EventWorth(worth)
	e.State = domain.EventState(state)
	return &e, nil
}
