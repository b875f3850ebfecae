package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/achievement"
	"github.com/VMatyagin/so-rest/internal/transport/middleware"
	"github.com/VMatyagin/so-rest/pkg/ctxutil"
)

type achievementService interface {
	Catalog(ctx context.Context) ([]domain.Achievement, error)
	Refresh(ctx context.Context, boecID uuid.UUID) (*achievement.RefreshResult, error)
}

// BoecHandler serves per-boec progress, achievements and feed maintenance.
type BoecHandler struct {
	progress     progressService
	achievements achievementService
	activities   activityService
	log          *slog.Logger
}

// NewBoecHandler creates a BoecHandler.
func NewBoecHandler(
	progress progressService,
	achievements achievementService,
	activities activityService,
	logger *slog.Logger,
) *BoecHandler {
	return &BoecHandler{
		progress:     progress,
		achievements: achievements,
		activities:   activities,
		log:          logger.With("handler", "boec"),
	}
}

// Catalog handles GET /achievements.
func (h *BoecHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	list, err := h.achievements.Catalog(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAchievementList(list))
}

// Progress handles GET /boecs/{id}/progress.
func (h *BoecHandler) Progress(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireBoec(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	boecID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.progress.Progress(r.Context(), boecID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(p))
}

type refreshResponse struct {
	BoecID  string                `json:"boecId"`
	Granted []achievementResponse `json:"granted"`
}

// RefreshAchievements handles POST /boecs/{id}/achievements/refresh. A boec
// may refresh itself; anyone else needs the admin role.
func (h *BoecHandler) RefreshAchievements(w http.ResponseWriter, r *http.Request) {
	boecID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if caller, ok := ctxutil.BoecIDFromCtx(r.Context()); !ok || caller != boecID {
		if err := middleware.RequireAdmin(r.Context()); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	res, err := h.achievements.Refresh(r.Context(), boecID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{
		BoecID:  res.BoecID.String(),
		Granted: toAchievementList(res.Granted),
	})
}

type reconcileResponse struct {
	Previous int  `json:"previous"`
	Actual   int  `json:"actual"`
	Changed  bool `json:"changed"`
}

// ReconcileActivities handles POST /boecs/{id}/activities/reconcile.
func (h *BoecHandler) ReconcileActivities(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	boecID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.activities.Reconcile(r.Context(), boecID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, reconcileResponse{Previous: res.Previous, Actual: res.Actual, Changed: res.Changed()})
}
