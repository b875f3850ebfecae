package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func mustExec(t *testing.T, pool *pgxpool.Pool, name, sql string, args ...any) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("testhelper: %s: %v", name, err)
	}
}

// ---------------------------------------------------------------------------
// Organization
// ---------------------------------------------------------------------------

// SeedShtab inserts a shtab.
func SeedShtab(t *testing.T, pool *pgxpool.Pool) domain.Shtab {
	t.Helper()
	s := domain.Shtab{ID: uuid.New(), Title: "Shtab " + uniqueSuffix()}
	mustExec(t, pool, "SeedShtab", `INSERT INTO shtabs (id, title) VALUES ($1, $2)`, s.ID, s.Title)
	return s
}

// SeedArea inserts an area.
func SeedArea(t *testing.T, pool *pgxpool.Pool) domain.Area {
	t.Helper()
	a := domain.Area{ID: uuid.New(), Title: "Area " + uniqueSuffix()}
	mustExec(t, pool, "SeedArea", `INSERT INTO areas (id, title) VALUES ($1, $2)`, a.ID, a.Title)
	return a
}

// SeedBoec inserts a boec with no VK binding and a zero unread counter.
func SeedBoec(t *testing.T, pool *pgxpool.Pool) domain.Boec {
	t.Helper()
	suffix := uniqueSuffix()
	b := domain.Boec{
		ID:        uuid.New(),
		FirstName: "First " + suffix,
		LastName:  "Last " + suffix,
		CreatedAt: now(),
	}
	mustExec(t, pool, "SeedBoec",
		`INSERT INTO boecs (id, first_name, last_name, created_at) VALUES ($1, $2, $3, $4)`,
		b.ID, b.FirstName, b.LastName, b.CreatedAt,
	)
	return b
}

// SeedBoecWithVK inserts a boec bound to the given VK user id.
func SeedBoecWithVK(t *testing.T, pool *pgxpool.Pool, vkID int64) domain.Boec {
	t.Helper()
	b := SeedBoec(t, pool)
	mustExec(t, pool, "SeedBoecWithVK", `UPDATE boecs SET vk_id = $2 WHERE id = $1`, b.ID, vkID)
	b.VKID = &vkID
	return b
}

// SeedBrigade inserts a brigade in the given state under the shtab and area.
func SeedBrigade(t *testing.T, pool *pgxpool.Pool, shtab domain.Shtab, area domain.Area, state domain.BrigadeState) domain.Brigade {
	t.Helper()
	br := domain.Brigade{
		ID:        uuid.New(),
		Title:     "Brigade " + uniqueSuffix(),
		AreaID:    area.ID,
		ShtabID:   shtab.ID,
		State:     state,
		CreatedAt: now(),
	}
	mustExec(t, pool, "SeedBrigade",
		`INSERT INTO brigades (id, title, area_id, shtab_id, state, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		br.ID, br.Title, br.AreaID, br.ShtabID, string(br.State), br.CreatedAt,
	)
	return br
}

// SeedSeason inserts a season of boec in brigade for year.
func SeedSeason(t *testing.T, pool *pgxpool.Pool, boecID, brigadeID uuid.UUID, year int, accepted, candidate bool) domain.Season {
	t.Helper()
	s := domain.Season{
		ID:          uuid.New(),
		BoecID:      boecID,
		BrigadeID:   brigadeID,
		Year:        year,
		IsAccepted:  accepted,
		IsCandidate: candidate,
		CreatedAt:   now(),
	}
	mustExec(t, pool, "SeedSeason",
		`INSERT INTO seasons (id, boec_id, brigade_id, year, is_accepted, is_candidate, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.BoecID, s.BrigadeID, s.Year, s.IsAccepted, s.IsCandidate, s.CreatedAt,
	)
	return s
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

// EventOption customizes SeedEvent.
type EventOption func(*domain.Event)

// WithState sets the initial event state.
func WithState(s domain.EventState) EventOption {
	return func(e *domain.Event) { e.State = s }
}

// WithWorth sets the event worth.
func WithWorth(w domain.EventWorth) EventOption {
	return func(e *domain.Event) { e.Worth = w }
}

// Ticketed marks the event as ticketed.
func Ticketed() EventOption {
	return func(e *domain.Event) { e.IsTicketed = true }
}

// SeedEvent inserts an event in CREATED with UNSET worth unless options say otherwise.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, opts ...EventOption) domain.Event {
	t.Helper()
	e := domain.Event{
		ID:        uuid.New(),
		Title:     "Event " + uniqueSuffix(),
		StartDate: now().Add(24 * time.Hour),
		Worth:     domain.EventWorthUnset,
		State:     domain.EventStateCreated,
		CreatedAt: now(),
	}
	for _, o := range opts {
		o(&e)
	}
	mustExec(t, pool, "SeedEvent",
		`INSERT INTO events (id, title, start_date, worth, state, is_ticketed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Title, e.StartDate, string(e.Worth), string(e.State), e.IsTicketed, e.CreatedAt,
	)
	return e
}

// SeedQuota inserts an event quota.
func SeedQuota(t *testing.T, pool *pgxpool.Pool, eventID, brigadeID uuid.UUID, count int) {
	t.Helper()
	mustExec(t, pool, "SeedQuota",
		`INSERT INTO event_quotas (event_id, brigade_id, count) VALUES ($1, $2, $3)`,
		eventID, brigadeID, count,
	)
}

// SeedParticipant inserts a participant. brigadeID may be nil.
func SeedParticipant(t *testing.T, pool *pgxpool.Pool, eventID, boecID uuid.UUID, brigadeID *uuid.UUID, worth domain.ParticipantWorth, approved bool) domain.Participant {
	t.Helper()
	p := domain.Participant{
		ID:         uuid.New(),
		EventID:    eventID,
		BoecID:     boecID,
		BrigadeID:  brigadeID,
		Worth:      worth,
		IsApproved: approved,
		CreatedAt:  now(),
	}
	mustExec(t, pool, "SeedParticipant",
		`INSERT INTO participants (id, event_id, boec_id, brigade_id, worth, is_approved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.EventID, p.BoecID, p.BrigadeID, string(p.Worth), p.IsApproved, p.CreatedAt,
	)
	return p
}

// SeedTicket inserts a ticket without a code.
func SeedTicket(t *testing.T, pool *pgxpool.Pool, eventID, boecID uuid.UUID) domain.Ticket {
	t.Helper()
	tk := domain.Ticket{ID: uuid.New(), EventID: eventID, BoecID: boecID, CreatedAt: now()}
	mustExec(t, pool, "SeedTicket",
		`INSERT INTO tickets (id, event_id, boec_id, created_at) VALUES ($1, $2, $3, $4)`,
		tk.ID, tk.EventID, tk.BoecID, tk.CreatedAt,
	)
	return tk
}

// SeedTicketScan appends a scan to the ticket log.
func SeedTicketScan(t *testing.T, pool *pgxpool.Pool, ticketID uuid.UUID, final bool, at time.Time) domain.TicketScan {
	t.Helper()
	s := domain.TicketScan{ID: uuid.New(), TicketID: ticketID, IsFinal: final, CreatedAt: at}
	mustExec(t, pool, "SeedTicketScan",
		`INSERT INTO ticket_scans (id, ticket_id, is_final, created_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.TicketID, s.IsFinal, s.CreatedAt,
	)
	return s
}

// ---------------------------------------------------------------------------
// Competitions
// ---------------------------------------------------------------------------

// SeedCompetition inserts a competition of the event.
func SeedCompetition(t *testing.T, pool *pgxpool.Pool, eventID uuid.UUID, ratingless bool) domain.Competition {
	t.Helper()
	c := domain.Competition{
		ID:         uuid.New(),
		EventID:    eventID,
		Title:      "Competition " + uniqueSuffix(),
		Ratingless: ratingless,
		CreatedAt:  now(),
	}
	mustExec(t, pool, "SeedCompetition",
		`INSERT INTO competitions (id, event_id, title, ratingless, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.EventID, c.Title, c.Ratingless, c.CreatedAt,
	)
	return c
}

// SeedCompetitionParticipant inserts a competition participant made of the given boecs.
func SeedCompetitionParticipant(t *testing.T, pool *pgxpool.Pool, competitionID uuid.UUID, worth domain.CompetitionWorth, boecIDs ...uuid.UUID) domain.CompetitionParticipant {
	t.Helper()
	p := domain.CompetitionParticipant{
		ID:            uuid.New(),
		CompetitionID: competitionID,
		Title:         "Team " + uniqueSuffix(),
		Worth:         worth,
		BoecIDs:       boecIDs,
		CreatedAt:     now(),
	}
	mustExec(t, pool, "SeedCompetitionParticipant",
		`INSERT INTO competition_participants (id, competition_id, title, worth, created_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.CompetitionID, p.Title, string(p.Worth), p.CreatedAt,
	)
	for _, b := range boecIDs {
		mustExec(t, pool, "SeedCompetitionParticipant boec",
			`INSERT INTO competition_participant_boecs (participant_id, boec_id) VALUES ($1, $2)`, p.ID, b)
	}
	return p
}

// SeedNomination inserts a nomination owned by the given competition participants.
func SeedNomination(t *testing.T, pool *pgxpool.Pool, competitionID uuid.UUID, ownerIDs ...uuid.UUID) domain.Nomination {
	t.Helper()
	n := domain.Nomination{
		ID:            uuid.New(),
		CompetitionID: competitionID,
		Title:         "Nomination " + uniqueSuffix(),
		IsRated:       true,
		OwnerIDs:      ownerIDs,
		CreatedAt:     now(),
	}
	mustExec(t, pool, "SeedNomination",
		`INSERT INTO nominations (id, competition_id, title, is_rated, created_at) VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.CompetitionID, n.Title, n.IsRated, n.CreatedAt,
	)
	for _, o := range ownerIDs {
		mustExec(t, pool, "SeedNomination owner",
			`INSERT INTO nomination_owners (nomination_id, participant_id) VALUES ($1, $2)`, n.ID, o)
	}
	return n
}

// ---------------------------------------------------------------------------
// Achievements and activities
// ---------------------------------------------------------------------------

// SeedAchievement inserts a catalog entry.
func SeedAchievement(t *testing.T, pool *pgxpool.Pool, typ domain.AchievementType, goal int) domain.Achievement {
	t.Helper()
	a := domain.Achievement{
		ID:        uuid.New(),
		Title:     "Achievement " + uniqueSuffix(),
		Type:      typ,
		Goal:      goal,
		CreatedAt: now(),
	}
	mustExec(t, pool, "SeedAchievement",
		`INSERT INTO achievements (id, title, type, goal, created_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Title, string(a.Type), a.Goal, a.CreatedAt,
	)
	return a
}

// SeedGrant records that boec holds the achievement.
func SeedGrant(t *testing.T, pool *pgxpool.Pool, achievementID, boecID uuid.UUID) {
	t.Helper()
	mustExec(t, pool, "SeedGrant",
		`INSERT INTO achievement_grants (achievement_id, boec_id) VALUES ($1, $2)`, achievementID, boecID)
}

// SeedWarningActivity inserts a warning and an unseen WARNING activity for
// boec without touching the unread counter.
func SeedWarningActivity(t *testing.T, pool *pgxpool.Pool, boecID uuid.UUID, at time.Time) domain.Activity {
	t.Helper()
	w := domain.Warning{ID: uuid.New(), Text: "warning " + uniqueSuffix(), CreatedAt: at}
	mustExec(t, pool, "SeedWarningActivity warning",
		`INSERT INTO warnings (id, text, created_at) VALUES ($1, $2, $3)`, w.ID, w.Text, w.CreatedAt)

	a := domain.Activity{
		ID:        uuid.New(),
		BoecID:    boecID,
		Type:      domain.ActivityTypeWarning,
		WarningID: &w.ID,
		CreatedAt: at,
		Warning:   &w,
	}
	mustExec(t, pool, "SeedWarningActivity",
		`INSERT INTO activities (id, boec_id, type, warning_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.BoecID, string(a.Type), a.WarningID, a.CreatedAt,
	)
	return a
}

// SetUnread overwrites the boec's unread counter.
func SetUnread(t *testing.T, pool *pgxpool.Pool, boecID uuid.UUID, n int) {
	t.Helper()
	mustExec(t, pool, "SetUnread", `UPDATE boecs SET unread_activity_count = $2 WHERE id = $1`, boecID, n)
}

// UnreadCount reads the boec's unread counter.
func UnreadCount(t *testing.T, pool *pgxpool.Pool, boecID uuid.UUID) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT unread_activity_count FROM boecs WHERE id = $1`, boecID).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: UnreadCount: %v", err)
	}
	return n
}
