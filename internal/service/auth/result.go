package auth

import (
	"time"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// AuthResult is returned by LoginVK.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Boec        *domain.Boec
	Role        domain.Role
	Created     bool
}
