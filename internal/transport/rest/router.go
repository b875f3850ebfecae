package rest

import "net/http"

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Me          *MeHandler
	Boec        *BoecHandler
	Event       *EventHandler
	Ticket      *TicketHandler
	Competition *CompetitionHandler
	Brigade     *BrigadeHandler
}

// NewRouter registers all routes. loginLimit wraps the login route only.
func NewRouter(h Handlers, loginLimit func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/vk", loginLimit(http.HandlerFunc(h.Auth.LoginVK)))

	mux.HandleFunc("GET /me/progress", h.Me.Progress)
	mux.HandleFunc("GET /me/activities", h.Me.Activities)
	mux.HandleFunc("POST /me/activities/seen", h.Me.MarkSeen)

	mux.HandleFunc("GET /achievements", h.Boec.Catalog)
	mux.HandleFunc("GET /boecs/{id}/progress", h.Boec.Progress)
	mux.HandleFunc("POST /boecs/{id}/achievements/refresh", h.Boec.RefreshAchievements)
	mux.HandleFunc("POST /boecs/{id}/activities/reconcile", h.Boec.ReconcileActivities)

	mux.HandleFunc("POST /events/{id}/transitions/{name}", h.Event.Transition)
	mux.HandleFunc("POST /events/{id}/quotas", h.Event.DistributeQuotas)
	mux.HandleFunc("GET /events/{id}/quotas", h.Event.ListQuotas)
	mux.HandleFunc("POST /events/{id}/participants", h.Event.RegisterParticipant)
	mux.HandleFunc("POST /participants/{id}/approve", h.Event.Approve)
	mux.HandleFunc("POST /participants/{id}/unapprove", h.Event.Unapprove)

	mux.HandleFunc("POST /tickets/{id}/scan", h.Ticket.Scan)
	mux.HandleFunc("POST /tickets/{id}/unscan", h.Ticket.Unscan)

	mux.HandleFunc("PUT /competition-participants/{id}/worth", h.Competition.SetWorth)
	mux.HandleFunc("DELETE /nominations/{id}", h.Competition.DeleteNomination)

	mux.HandleFunc("GET /brigades/{id}", h.Brigade.Get)
	mux.HandleFunc("POST /brigades/{id}/state/{transition}", h.Brigade.Transition)

	return mux
}
