package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/competition"
	"github.com/VMatyagin/so-rest/internal/transport/middleware"
)

type competitionService interface {
	SetWorth(ctx context.Context, input competition.SetWorthInput) (*domain.CompetitionParticipant, error)
	DeleteNomination(ctx context.Context, nominationID uuid.UUID) error
}

// CompetitionHandler serves competition worth and nomination endpoints.
type CompetitionHandler struct {
	competitions competitionService
	log          *slog.Logger
}

// NewCompetitionHandler creates a CompetitionHandler.
func NewCompetitionHandler(competitions competitionService, logger *slog.Logger) *CompetitionHandler {
	return &CompetitionHandler{competitions: competitions, log: logger.With("handler", "competition")}
}

type setWorthRequest struct {
	Worth        string  `json:"worth"`
	NominationID *string `json:"nominationId"`
}

// SetWorth handles PUT /competition-participants/{id}/worth.
func (h *CompetitionHandler) SetWorth(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req setWorthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	nominationID, err := parseOptionalID("nomination_id", req.NominationID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.competitions.SetWorth(r.Context(), competition.SetWorthInput{
		ParticipantID: id,
		Worth:         domain.CompetitionWorth(req.Worth),
		NominationID:  nominationID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompetitionParticipantResponse(p))
}

// DeleteNomination handles DELETE /nominations/{id}.
func (h *CompetitionHandler) DeleteNomination(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.competitions.DeleteNomination(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
