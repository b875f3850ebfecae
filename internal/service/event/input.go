package event

import (
	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// DistributeQuotasInput describes a quota distribution run. At most one of
// ShtabID and AreaID may be set.
type DistributeQuotasInput struct {
	EventID            uuid.UUID
	TotalCount         int
	CandidatesAccepted bool
	ShtabID            *uuid.UUID
	AreaID             *uuid.UUID
}

// Scope returns the brigade scope of the input.
func (i DistributeQuotasInput) Scope() domain.BrigadeScope {
	return domain.BrigadeScope{ShtabID: i.ShtabID, AreaID: i.AreaID}
}

// Validate checks all fields and collects all errors.
func (i DistributeQuotasInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.TotalCount <= 0 {
		errs = append(errs, domain.FieldError{Field: "total_count", Message: "must be positive"})
	}
	if i.ShtabID != nil && i.AreaID != nil {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "shtab and area are mutually exclusive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
