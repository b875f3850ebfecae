package auth

import "github.com/VMatyagin/so-rest/internal/domain"

// LoginInput holds the raw launch query the VK mini app was opened with.
type LoginInput struct {
	LaunchParams string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.LaunchParams == "" {
		errs = append(errs, domain.FieldError{Field: "launch_params", Message: "required"})
	} else if len(i.LaunchParams) > 4096 {
		errs = append(errs, domain.FieldError{Field: "launch_params", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
