package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// LoginVK verifies the signed launch parameters and issues an access token
// for the boec linked to the VK user. Unknown VK users get a new boec.
func (s *Service) LoginVK(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.vk.Verify(input.LaunchParams)
	if err != nil {
		s.log.WarnContext(ctx, "vk signature rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("auth.LoginVK verify: %w", err)
	}

	boec, created, err := s.resolveBoec(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if s.cfg.IsAdmin(identity.UserID) {
		role = domain.RoleAdmin
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(boec.ID, role)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginVK issue token: %w", err)
	}

	s.log.InfoContext(ctx, "boec logged in via vk",
		slog.String("boec_id", boec.ID.String()),
		slog.Int64("vk_id", identity.UserID),
		slog.String("role", role.String()),
		slog.Bool("created", created))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Boec:        boec,
		Role:        role,
		Created:     created,
	}, nil
}

func (s *Service) resolveBoec(ctx context.Context, vkID int64) (*domain.Boec, bool, error) {
	boec, err := s.boecs.GetByVKID(ctx, vkID)
	if err == nil {
		return boec, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("auth.LoginVK get boec: %w", err)
	}

	boec, err = s.boecs.Create(ctx, &domain.Boec{
		ID:        uuid.New(),
		VKID:      &vkID,
		CreatedAt: s.now(),
	})
	if err == nil {
		return boec, true, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, false, fmt.Errorf("auth.LoginVK create boec: %w", err)
	}

	// Concurrent first login created it.
	boec, err = s.boecs.GetByVKID(ctx, vkID)
	if err != nil {
		return nil, false, fmt.Errorf("auth.LoginVK get boec: %w", err)
	}
	return boec, false, nil
}
