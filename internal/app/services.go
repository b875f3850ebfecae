package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VMatyagin/so-rest/internal/adapter/postgres"
	achievementrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/achievement"
	activityrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/activity"
	boecrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/boec"
	brigaderepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/brigade"
	competitionrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/competition"
	eventrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/event"
	participantrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/participant"
	progressrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/progress"
	ticketrepo "github.com/VMatyagin/so-rest/internal/adapter/postgres/ticket"
	jwtauth "github.com/VMatyagin/so-rest/internal/auth"
	"github.com/VMatyagin/so-rest/internal/config"
	"github.com/VMatyagin/so-rest/internal/service/achievement"
	"github.com/VMatyagin/so-rest/internal/service/activity"
	"github.com/VMatyagin/so-rest/internal/service/auth"
	"github.com/VMatyagin/so-rest/internal/service/brigade"
	"github.com/VMatyagin/so-rest/internal/service/competition"
	"github.com/VMatyagin/so-rest/internal/service/event"
	"github.com/VMatyagin/so-rest/internal/service/participant"
	"github.com/VMatyagin/so-rest/internal/service/progress"
	"github.com/VMatyagin/so-rest/internal/service/ticket"
)

// Services holds every domain service, wired to the PostgreSQL adapters.
type Services struct {
	Auth        *auth.Service
	Activity    *activity.Service
	Progress    *progress.Service
	Achievement *achievement.Service
	Event       *event.Service
	Participant *participant.Service
	Ticket      *ticket.Service
	Competition *competition.Service
	Brigade     *brigade.Service
}

// NewServices builds the repositories and services on top of pool.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Services {
	txm := postgres.NewTxManager(pool)

	boecs := boecrepo.New(pool)
	activities := activityrepo.New(pool)
	achievements := achievementrepo.New(pool)
	progressRepo := progressrepo.New(pool)
	events := eventrepo.New(pool)
	brigades := brigaderepo.New(pool)
	participants := participantrepo.New(pool)
	tickets := ticketrepo.New(pool)
	competitions := competitionrepo.New(pool)

	activitySvc := activity.NewService(logger, boecs, activities, txm)
	achievementSvc := achievement.NewService(logger, boecs, achievements, progressRepo, activitySvc, txm, cfg.Achievements)

	jwt := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	vk := jwtauth.NewVKVerifier(cfg.Auth.VKAppSecret)

	return &Services{
		Auth:        auth.NewService(logger, boecs, vk, jwt, cfg.Auth),
		Activity:    activitySvc,
		Progress:    progress.NewService(logger, progressRepo),
		Achievement: achievementSvc,
		Event:       event.NewService(logger, events, brigades, txm, achievementSvc, cfg.Achievements),
		Participant: participant.NewService(logger, participants, events, boecs, activitySvc, achievementSvc, txm),
		Ticket:      ticket.NewService(logger, tickets, txm),
		Competition: competition.NewService(logger, competitions, achievementSvc, txm),
		Brigade:     brigade.NewService(logger, brigades),
	}
}
