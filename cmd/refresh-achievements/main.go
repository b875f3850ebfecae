// Command refresh-achievements re-evaluates achievement goals for every
// boec, or for the boecs passed with -boec. It is intended to be invoked
// by an external cron job after bulk data imports.
//
// Exit codes: 0 = success, 1 = error or at least one boec failed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/adapter/postgres"
	"github.com/VMatyagin/so-rest/internal/app"
	"github.com/VMatyagin/so-rest/internal/config"
	"github.com/VMatyagin/so-rest/internal/service/achievement"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup always happens.
func run(args []string) int {
	fs := flag.NewFlagSet("refresh-achievements", flag.ContinueOnError)
	boecs := fs.String("boec", "", "comma-separated boec ids; empty refreshes everyone")
	timeout := fs.Duration("timeout", 30*time.Minute, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ids, err := parseIDs(*boecs)
	if err != nil {
		log.Printf("parse -boec: %v", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("load config: %v", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return 1
	}
	defer pool.Close()

	svc := app.NewServices(logger, pool, cfg)

	var res *achievement.BatchResult
	if len(ids) == 0 {
		res, err = svc.Achievement.RefreshAll(ctx)
	} else {
		res, err = svc.Achievement.RefreshMany(ctx, ids)
	}
	if err != nil {
		logger.Error("refresh failed", slog.String("error", err.Error()))
		return 1
	}

	for _, f := range res.Failed {
		logger.Error("boec refresh failed",
			slog.String("boec_id", f.BoecID.String()),
			slog.String("error", f.Err.Error()),
		)
	}
	logger.Info("refresh completed",
		slog.Int("processed", res.Processed),
		slog.Int("granted", res.Granted),
		slog.Int("failed", len(res.Failed)),
	)
	if len(res.Failed) > 0 {
		return 1
	}
	return 0
}

func parseIDs(raw string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
