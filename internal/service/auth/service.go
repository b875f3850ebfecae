package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/auth"
	"github.com/VMatyagin/so-rest/internal/config"
	"github.com/VMatyagin/so-rest/internal/domain"
)

// boecRepo defines the boec repository interface needed by auth service.
type boecRepo interface {
	GetByVKID(ctx context.Context, vkID int64) (*domain.Boec, error)
	Create(ctx context.Context, b *domain.Boec) (*domain.Boec, error)
}

// vkVerifier checks signed VK launch parameters.
type vkVerifier interface {
	Verify(launchParams string) (*auth.VKIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(boecID uuid.UUID, role domain.Role) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.Role, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	boecs boecRepo
	vk    vkVerifier
	jwt   jwtManager
	cfg   config.AuthConfig
	now   func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	boecs boecRepo,
	vk vkVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		boecs: boecs,
		vk:    vk,
		jwt:   jwt,
		cfg:   cfg,
		now:   time.Now,
	}
}

// ValidateToken resolves an access token to the boec it was issued for.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, domain.Role, error) {
	return s.jwt.ValidateAccessToken(token)
}
