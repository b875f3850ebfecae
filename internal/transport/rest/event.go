package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/internal/service/event"
	"github.com/VMatyagin/so-rest/internal/service/participant"
	"github.com/VMatyagin/so-rest/internal/transport/middleware"
)

type eventService interface {
	Transition(ctx context.Context, eventID uuid.UUID, name domain.Transition) (*event.TransitionResult, error)
	DistributeQuotas(ctx context.Context, input event.DistributeQuotasInput) ([]domain.EventQuota, error)
	ListQuotas(ctx context.Context, eventID uuid.UUID) ([]domain.EventQuota, error)
}

type participantService interface {
	Register(ctx context.Context, input participant.RegisterInput) (*domain.Participant, error)
	Approve(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error)
	Unapprove(ctx context.Context, participantID uuid.UUID) (*domain.Participant, error)
}

// EventHandler serves event lifecycle, quota and registration endpoints.
type EventHandler struct {
	events       eventService
	participants participantService
	log          *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events eventService, participants participantService, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, participants: participants, log: logger.With("handler", "event")}
}

type transitionResponse struct {
	Event               eventResponse `json:"event"`
	Previous            string        `json:"previous"`
	Noop                bool          `json:"noop"`
	TicketCodesAssigned int           `json:"ticketCodesAssigned,omitempty"`
	Available           []string      `json:"available"`
}

// Transition handles POST /events/{id}/transitions/{name}.
func (h *EventHandler) Transition(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	eventID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.events.Transition(r.Context(), eventID, domain.Transition(r.PathValue("name")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	available := make([]string, len(res.Available))
	for i, t := range res.Available {
		available[i] = t.String()
	}
	writeJSON(w, http.StatusOK, transitionResponse{
		Event:               toEventResponse(res.Event),
		Previous:            res.Previous.String(),
		Noop:                res.Noop,
		TicketCodesAssigned: res.TicketCodesAssigned,
		Available:           available,
	})
}

type distributeQuotasRequest struct {
	TotalCount         int     `json:"totalCount"`
	CandidatesAccepted bool    `json:"candidatesAccepted"`
	ShtabID            *string `json:"shtabId"`
	AreaID             *string `json:"areaId"`
}

// DistributeQuotas handles POST /events/{id}/quotas.
func (h *EventHandler) DistributeQuotas(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	eventID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req distributeQuotasRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	shtabID, err := parseOptionalID("shtab_id", req.ShtabID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	areaID, err := parseOptionalID("area_id", req.AreaID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	quotas, err := h.events.DistributeQuotas(r.Context(), event.DistributeQuotasInput{
		EventID:            eventID,
		TotalCount:         req.TotalCount,
		CandidatesAccepted: req.CandidatesAccepted,
		ShtabID:            shtabID,
		AreaID:             areaID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuotaList(quotas))
}

// ListQuotas handles GET /events/{id}/quotas.
func (h *EventHandler) ListQuotas(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireBoec(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	eventID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	quotas, err := h.events.ListQuotas(r.Context(), eventID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuotaList(quotas))
}

type registerParticipantRequest struct {
	BoecID    *string `json:"boecId"`
	BrigadeID *string `json:"brigadeId"`
	Worth     string  `json:"worth"`
}

// RegisterParticipant handles POST /events/{id}/participants. Without the
// admin role a boec may only register itself at the default worth.
func (h *EventHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.RequireBoec(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	eventID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req registerParticipantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	boecID, err := parseOptionalID("boec_id", req.BoecID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	brigadeID, err := parseOptionalID("brigade_id", req.BrigadeID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if boecID == nil {
		boecID = &caller
	}
	worth := domain.ParticipantWorth(req.Worth)
	if *boecID != caller || (worth != "" && worth != domain.ParticipantWorthDefault) {
		if err := middleware.RequireAdmin(r.Context()); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	p, err := h.participants.Register(r.Context(), participant.RegisterInput{
		EventID:   eventID,
		BoecID:    *boecID,
		BrigadeID: brigadeID,
		Worth:     worth,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParticipantResponse(p))
}

// Approve handles POST /participants/{id}/approve.
func (h *EventHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, h.participants.Approve)
}

// Unapprove handles POST /participants/{id}/unapprove.
func (h *EventHandler) Unapprove(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, h.participants.Unapprove)
}

func (h *EventHandler) setApproval(
	w http.ResponseWriter,
	r *http.Request,
	apply func(context.Context, uuid.UUID) (*domain.Participant, error),
) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := apply(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantResponse(p))
}
