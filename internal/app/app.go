package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/config"
	"github.com/VMatyagin/so-rest/internal/transport/middleware"
	"github.com/VMatyagin/so-rest/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	svc := NewServices(logger, pool, cfg)

	api := NewHTTP(logger, cfg, pool, svc)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      api.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		api.Close()
		svc.Event.Wait()
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	api.Drain()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	api.Close()

	// Background PASSED refreshes hold pool connections.
	svc.Event.Wait()
	logger.Info("stopped")
	return nil
}

// HTTP is the assembled REST surface: router wrapped in the middleware chain.
type HTTP struct {
	Handler http.Handler

	health  *rest.HealthHandler
	limiter *middleware.RateLimiter
}

// NewHTTP mounts every REST handler on top of svc.
func NewHTTP(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, svc *Services) *HTTP {
	health := rest.NewHealthHandler(pool, BuildVersion())
	limiter := middleware.NewRateLimiter(time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:      health,
		Auth:        rest.NewAuthHandler(svc.Auth, logger),
		Me:          rest.NewMeHandler(svc.Progress, svc.Activity, logger),
		Boec:        rest.NewBoecHandler(svc.Progress, svc.Achievement, svc.Activity, logger),
		Event:       rest.NewEventHandler(svc.Event, svc.Participant, logger),
		Ticket:      rest.NewTicketHandler(svc.Ticket, logger),
		Competition: rest.NewCompetitionHandler(svc.Competition, logger),
		Brigade:     rest.NewBrigadeHandler(svc.Brigade, logger),
	}, limiter.Limit(cfg.Server.LoginRateLimit))

	handler := middleware.Chain(
		middleware.Tracing(cfg.Tracing.ServiceName),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc.Auth),
	)(router)

	return &HTTP{Handler: handler, health: health, limiter: limiter}
}

// Drain makes /ready report 503 so load balancers stop routing here.
func (h *HTTP) Drain() { h.health.SetDraining() }

// Close stops the rate limiter's cleanup loop.
func (h *HTTP) Close() { h.limiter.Stop() }
