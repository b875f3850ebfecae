package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/transport/middleware"
)

type brigadeService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Brigade, error)
	Transition(ctx context.Context, id uuid.UUID, transition domain.BrigadeTransition) (*domain.Brigade, error)
}

// BrigadeHandler serves brigade lookups and state changes.
type BrigadeHandler struct {
	brigades brigadeService
	log      *slog.Logger
}

// NewBrigadeHandler creates a BrigadeHandler.
func NewBrigadeHandler(brigades brigadeService, logger *slog.Logger) *BrigadeHandler {
	return &BrigadeHandler{brigades: brigades, log: logger.With("handler", "brigade")}
}

// Get handles GET /brigades/{id}.
func (h *BrigadeHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireBoec(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.brigades.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBrigadeResponse(b))
}

// Transition handles POST /brigades/{id}/state/{transition}.
func (h *BrigadeHandler) Transition(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.brigades.Transition(r.Context(), id, domain.BrigadeTransition(r.PathValue("transition")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBrigadeResponse(b))
}
