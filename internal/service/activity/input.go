package activity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// RecordInput describes one feed entry. NEW_ACHIEVEMENT entries reference an
// achievement; INFO and WARNING entries carry a warning text.
type RecordInput struct {
	Type          domain.ActivityType
	WarningText   string
	AchievementID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}

	text := strings.TrimSpace(i.WarningText)
	switch i.Type {
	case domain.ActivityTypeNewAchievement:
		if i.AchievementID == nil || *i.AchievementID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "achievement_id", Message: "required"})
		}
		if text != "" {
			errs = append(errs, domain.FieldError{Field: "warning_text", Message: "must be empty for achievements"})
		}
	case domain.ActivityTypeInfo, domain.ActivityTypeWarning:
		if text == "" {
			errs = append(errs, domain.FieldError{Field: "warning_text", Message: "required"})
		}
		if i.AchievementID != nil {
			errs = append(errs, domain.FieldError{Field: "achievement_id", Message: "must be empty for warnings"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput filters a feed listing. A nil Seen returns every entry.
type ListInput struct {
	Seen *bool
}
