package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// seasonYearBoundary is the first month of a new season year.
const seasonYearBoundary = time.September

// TargetSeasonYear returns the most recent season year whose results are
// complete at now: the current year from September on, the previous one
// before that.
func TargetSeasonYear(now time.Time) int {
	if now.Month() >= seasonYearBoundary {
		return now.Year()
	}
	return now.Year() - 1
}

// BrigadeWeight is a brigade's historical attendance used for quota sizing.
type BrigadeWeight struct {
	BrigadeID uuid.UUID
	Weight    int
}

// AllocateQuotas distributes total seats proportionally to weights:
// count = round(weight * total / sum(weights)). Every weighted brigade gets a
// quota, including zero-weight ones. A zero weight sum is a validation error.
func AllocateQuotas(eventID uuid.UUID, total int, weights []BrigadeWeight) ([]EventQuota, error) {
	if total <= 0 {
		return nil, NewValidationError("total_count", "must be positive")
	}
	if len(weights) == 0 {
		return nil, NewValidationError("scope", "no eligible brigades")
	}

	sum := 0
	for _, w := range weights {
		if w.Weight < 0 {
			return nil, NewValidationError("weight", "must be non-negative")
		}
		sum += w.Weight
	}
	if sum == 0 {
		return nil, NewValidationError("total_count", "no eligible brigade has season history")
	}

	ratio := float64(total) / float64(sum)

	quotas := make([]EventQuota, len(weights))
	for i, w := range weights {
		quotas[i] = EventQuota{
			EventID:   eventID,
			BrigadeID: w.BrigadeID,
			Count:     int(math.Round(float64(w.Weight) * ratio)),
		}
	}
	return quotas, nil
}

// BrigadeScope restricts quota eligibility to one shtab or one area. Both nil
// means every brigade.
type BrigadeScope struct {
	ShtabID *uuid.UUID
	AreaID  *uuid.UUID
}

// Validate rejects a scope naming both a shtab and an area.
func (s BrigadeScope) Validate() error {
	if s.ShtabID != nil && s.AreaID != nil {
		return NewValidationError("scope", "shtab and area are mutually exclusive")
	}
	return nil
}

// EligibleStates returns the brigade states that take part in quota
// allocation. DEAD brigades never do.
func EligibleStates(candidatesAccepted bool) []BrigadeState {
	if candidatesAccepted {
		return []BrigadeState{BrigadeStateMember, BrigadeStateCandidate}
	}
	return []BrigadeState{BrigadeStateMember}
}
