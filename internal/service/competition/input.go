package competition

import (
	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// SetWorthInput changes a competition participant's worth. NominationID may
// only accompany INVOLVEMENT and grants ownership of that nomination.
type SetWorthInput struct {
	ParticipantID uuid.UUID
	Worth         domain.CompetitionWorth
	NominationID  *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i SetWorthInput) Validate() error {
	var errs []domain.FieldError

	if i.ParticipantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "participant_id", Message: "required"})
	}
	if !i.Worth.IsValid() {
		errs = append(errs, domain.FieldError{Field: "worth", Message: "invalid value"})
	}
	if i.Worth == domain.CompetitionWorthDefault && i.NominationID != nil {
		errs = append(errs, domain.FieldError{Field: "nomination_id", Message: "only allowed with INVOLVEMENT"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
