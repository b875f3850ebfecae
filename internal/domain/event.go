package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an organization event with an explicit lifecycle.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Location    string
	ShtabID     *uuid.UUID
	StartDate   time.Time
	Worth       EventWorth
	State       EventState
	IsTicketed  bool
	IsCanonical bool
	Visibility  bool
	CreatedAt   time.Time
}

// EventQuota is the seat allocation of a brigade at an event.
type EventQuota struct {
	EventID   uuid.UUID
	BrigadeID uuid.UUID
	Count     int
}

// Participant links a boec to an event.
type Participant struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	BoecID     uuid.UUID
	BrigadeID  *uuid.UUID
	Worth      ParticipantWorth
	IsApproved bool
	CreatedAt  time.Time
}

// Ticket is an entry ticket of a boec to an event.
type Ticket struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	BoecID    uuid.UUID
	Code      *uuid.UUID
	CreatedAt time.Time
}

// TicketScan is one entry of a ticket's scan log.
type TicketScan struct {
	ID        uuid.UUID
	TicketID  uuid.UUID
	IsFinal   bool
	CreatedAt time.Time
}
