package domain

import (
	"time"

	"github.com/google/uuid"
)

// Competition belongs to an event. Ratingless competitions do not count
// towards progress.
type Competition struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	Title      string
	Ratingless bool
	CreatedAt  time.Time
}

// CompetitionParticipant is an application to a competition, possibly by
// several boecs and brigades.
type CompetitionParticipant struct {
	ID            uuid.UUID
	CompetitionID uuid.UUID
	Title         string
	Worth         CompetitionWorth
	BoecIDs       []uuid.UUID
	BrigadeIDs    []uuid.UUID
	CreatedAt     time.Time
}

// Nomination is an award category that may own winning participants.
type Nomination struct {
	ID            uuid.UUID
	CompetitionID uuid.UUID
	Title         string
	IsRated       bool
	SportPlace    *int
	OwnerIDs      []uuid.UUID
	CreatedAt     time.Time
}
