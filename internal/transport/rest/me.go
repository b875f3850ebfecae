package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/activity"
	"github.com/VMatyagin/so-rest/internal/transport/middleware"
)

type progressService interface {
	Progress(ctx context.Context, boecID uuid.UUID) (domain.Progress, error)
}

type activityService interface {
	List(ctx context.Context, boecID uuid.UUID, input activity.ListInput) ([]domain.Activity, error)
	MarkAllSeen(ctx context.Context, boecID uuid.UUID) (int, error)
	Reconcile(ctx context.Context, boecID uuid.UUID) (*activity.ReconcileResult, error)
}

// MeHandler serves the caller's own progress and activity feed.
type MeHandler struct {
	progress   progressService
	activities activityService
	log        *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(progress progressService, activities activityService, logger *slog.Logger) *MeHandler {
	return &MeHandler{progress: progress, activities: activities, log: logger.With("handler", "me")}
}

// Progress handles GET /me/progress.
func (h *MeHandler) Progress(w http.ResponseWriter, r *http.Request) {
	boecID, err := middleware.RequireBoec(r.Context())
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

// Activities handles GET /me/activities?seen=true|false.
func (h *MeHandler) Activities(w http.ResponseWriter, r *http.Request) {
	boecID, err := middleware.RequireBoec(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var input activity.ListInput
	if raw := r.URL.Query().Get("seen"); raw != "" {
		seen, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("seen", "must be true or false"))
			return
		}
		input.Seen = &seen
	}

	list, err := h.activities.List(r.Context(), boecID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityList(list))
}

// MarkSeen handles POST /me/activities/seen.
func (h *MeHandler) MarkSeen(w http.ResponseWriter, r *http.Request) {
	boecID, err := middleware.RequireBoec(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.activities.MarkAllSeen(r.Context(), boecID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"marked": n})
}
