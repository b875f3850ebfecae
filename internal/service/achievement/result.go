package achievement

import (
	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// RefreshResult lists the achievements granted to one boec by a refresh.
type RefreshResult struct {
	BoecID  uuid.UUID
	Granted []domain.Achievement
}

// BoecFailure is a boec whose refresh failed after all retries.
type BoecFailure struct {
	BoecID uuid.UUID
	Err    error
}

// BatchResult summarizes a batch refresh. A failed boec never aborts the
// others.
type BatchResult struct {
	Processed int
	Granted   int
	Failed    []BoecFailure
}
