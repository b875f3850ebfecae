package domain

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a goal-based catalog entry.
type Achievement struct {
	ID          uuid.UUID
	Title       string
	Description string
	Type        AchievementType
	Goal        int
	CreatedAt   time.Time

	// HoldersCount is filled by catalog listings only.
	HoldersCount int
}

// Reached reports whether the given progress satisfies the goal. An entry
// whose type is not a known metric is never reached, whatever its goal.
func (a Achievement) Reached(p Progress) bool {
	if !a.Type.IsValid() {
		return false
	}
	return p.Get(a.Type) >= a.Goal
}

// Progress maps metric keys to a boec's aggregated counts.
type Progress map[AchievementType]int

// Get returns the count for key, or 0 when absent.
func (p Progress) Get(key AchievementType) int {
	return p[key]
}

// Warning is a free-text notice attached to an activity.
type Warning struct {
	ID        uuid.UUID
	Text      string
	CreatedAt time.Time
}

// Activity is an append-only feed entry. Exactly one of WarningID and
// AchievementID is set.
type Activity struct {
	ID            uuid.UUID
	BoecID        uuid.UUID
	Type          ActivityType
	WarningID     *uuid.UUID
	AchievementID *uuid.UUID
	Seen          bool
	CreatedAt     time.Time

	// Populated by listings.
	Warning     *Warning
	Achievement *Achievement
}
