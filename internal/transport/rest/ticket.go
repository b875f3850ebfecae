package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/service/ticket"
	"github.com/VMatyagin/so-rest/internal/transport/middleware"
)

type ticketService interface {
	Scan(ctx context.Context, ticketID uuid.UUID) (*ticket.ScanResult, error)
	Unscan(ctx context.Context, ticketID uuid.UUID) error
}

// TicketHandler serves entrance scanning.
type TicketHandler struct {
	tickets ticketService
	log     *slog.Logger
}

// NewTicketHandler creates a TicketHandler.
func NewTicketHandler(tickets ticketService, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{tickets: tickets, log: logger.With("handler", "ticket")}
}

type scanResponse struct {
	TicketID       string     `json:"ticketId"`
	EventID        string     `json:"eventId"`
	BoecID         string     `json:"boecId"`
	ScannedAt      time.Time  `json:"scannedAt"`
	PreviousScanAt *time.Time `json:"previousScanAt"`
}

// Scan handles POST /tickets/{id}/scan.
func (h *TicketHandler) Scan(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.tickets.Scan(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, scanResponse{
		TicketID:       res.Ticket.ID.String(),
		EventID:        res.EventID().String(),
		BoecID:         res.Ticket.BoecID.String(),
		ScannedAt:      res.Scan.CreatedAt,
		PreviousScanAt: res.PreviousScanAt,
	})
}

// Unscan handles POST /tickets/{id}/unscan.
func (h *TicketHandler) Unscan(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.tickets.Unscan(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
