package domain

import (
	"time"

	"github.com/google/uuid"
)

// Boec is a member of the organization.
type Boec struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	MiddleName          *string
	DateOfBirth         *time.Time
	VKID                *int64
	TelegramID          *int64
	UnreadActivityCount int
	CreatedAt           time.Time
}

// FullName returns "Last First Middle" with empty parts skipped.
func (b Boec) FullName() string {
	name := b.LastName
	if b.FirstName != "" {
		if name != "" {
			name += " "
		}
		name += b.FirstName
	}
	if b.MiddleName != nil && *b.MiddleName != "" {
		name += " " + *b.MiddleName
	}
	return name
}

// Area is a directional grouping of brigades.
type Area struct {
	ID    uuid.UUID
	Title string
}

// Shtab is a top-level grouping of brigades.
type Shtab struct {
	ID    uuid.UUID
	Title string
}

// Brigade is an organizational unit.
type Brigade struct {
	ID        uuid.UUID
	Title     string
	AreaID    uuid.UUID
	ShtabID   uuid.UUID
	State     BrigadeState
	CreatedAt time.Time
}

// Season records that a boec was in a brigade in a given year.
type Season struct {
	ID          uuid.UUID
	BoecID      uuid.UUID
	BrigadeID   uuid.UUID
	Year        int
	IsAccepted  bool
	IsCandidate bool
	CreatedAt   time.Time
}

// BrigadeTransition names a brigade state change. Every transition is allowed
// from any state.
type BrigadeTransition string

const (
	BrigadeAccept   BrigadeTransition = "accept"
	BrigadeKill     BrigadeTransition = "kill"
	BrigadeUnaccept BrigadeTransition = "unaccept"
)

// Target returns the state the transition leads to.
func (t BrigadeTransition) Target() (BrigadeState, bool) {
	switch t {
	case BrigadeAccept:
		return BrigadeStateMember, true
	case BrigadeKill:
		return BrigadeStateDead, true
	case BrigadeUnaccept:
		return BrigadeStateCandidate, true
	}
	return "", false
}
