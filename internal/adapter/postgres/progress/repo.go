// Package progress implements the participation aggregate query.
// Every metric is read by a single statement so the counts share one
// snapshot.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/domain"
)

const progressSQL = `
WITH pt AS (
    SELECT p.worth
      FROM participants p
      JOIN events e ON e.id = p.event_id
     WHERE p.boec_id = $1 AND p.is_approved AND e.state = 'PASSED'
), cp AS (
    SELECT cp.worth,
           ev.worth AS event_worth,
           EXISTS (SELECT 1 FROM nomination_owners n WHERE n.participant_id = cp.id) AS nominated
      FROM competition_participants cp
      JOIN competition_participant_boecs cpb ON cpb.participant_id = cp.id
      JOIN competitions c ON c.id = cp.competition_id
      JOIN events ev ON ev.id = c.event_id
     WHERE cpb.boec_id = $1 AND NOT c.ratingless
)
SELECT
    EXISTS (SELECT 1 FROM boecs WHERE id = $1),
    (SELECT count(*) FROM pt WHERE worth = 'DEFAULT'),
    (SELECT count(*) FROM pt WHERE worth = 'VOLUNTEER'),
    (SELECT count(*) FROM pt WHERE worth = 'ORGANIZER'),
    (SELECT count(*) FROM cp),
    (SELECT count(*) FROM cp WHERE worth = 'INVOLVEMENT'),
    (SELECT count(*) FROM cp WHERE worth = 'INVOLVEMENT' AND nominated),
    (SELECT count(*) FROM cp WHERE worth = 'INVOLVEMENT' AND nominated AND event_worth = 'SPORT'),
    (SELECT count(*) FROM cp WHERE worth = 'INVOLVEMENT' AND nominated AND event_worth = 'ART'),
    (SELECT count(*) FROM seasons s WHERE s.boec_id = $1 AND s.is_accepted AND NOT s.is_candidate)`

// Repo computes participation progress from PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Progress returns all nine metric counts for the boec. An unknown boec is
// domain.ErrNotFound.
func (r *Repo) Progress(ctx context.Context, boecID uuid.UUID) (domain.Progress, error) {
	var (
		exists bool
		counts [9]int64
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, progressSQL, boecID).Scan(
		&exists,
		&counts[0], &counts[1], &counts[2],
		&counts[3], &counts[4], &counts[5],
		&counts[6], &counts[7], &counts[8],
	)
	if err != nil {
		return nil, postgres.MapError(err, "progress of boec", boecID)
	}
	if !exists {
		return nil, fmt.Errorf("boec %s: %w", boecID, domain.ErrNotFound)
	}

	return domain.Progress{
		domain.AchievementParticipationCount: int(counts[0]),
		domain.AchievementVolunteerCount:     int(counts[1]),
		domain.AchievementOrganizerCount:     int(counts[2]),
		domain.AchievementCompetitionDefault: int(counts[3]),
		domain.AchievementCompetitionPlayoff: int(counts[4]),
		domain.AchievementNominations:        int(counts[5]),
		domain.AchievementSportWins:          int(counts[6]),
		domain.AchievementArtWins:            int(counts[7]),
		domain.AchievementSeasons:            int(counts[8]),
	}, nil
}
