package participant

import (
	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// RegisterInput registers a boec at an event. A nil BrigadeID falls back to
// the brigade of the boec's latest season; an empty Worth means DEFAULT.
type RegisterInput struct {
	EventID   uuid.UUID
	BoecID    uuid.UUID
	BrigadeID *uuid.UUID
	Worth     domain.ParticipantWorth
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.BoecID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "boec_id", Message: "required"})
	}
	if i.Worth != "" && !i.Worth.IsValid() {
		errs = append(errs, domain.FieldError{Field: "worth", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i RegisterInput) worth() domain.ParticipantWorth {
	if i.Worth == "" {
		return domain.ParticipantWorthDefault
	}
	return i.Worth
}
