package event

import "github.com/VMatyagin/so-rest/internal/domain"

// TransitionResult is the outcome of a lifecycle transition.
type TransitionResult struct {
	Event    *domain.Event
	Previous domain.EventState
	// Noop is set when cancel was requested on a cancelled event.
	Noop bool
	// TicketCodesAssigned counts tickets that received a code during
	// generate_tickets.
	TicketCodesAssigned int
	// Available lists the transitions that may be attempted next.
	Available []domain.Transition
}
