package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/VMatyagin/so-rest/internal/service/auth"
)

type authService interface {
	LoginVK(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginVKRequest struct {
	LaunchParams string `json:"launchParams"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	Role        string       `json:"role"`
	Boec        boecResponse `json:"boec"`
}

// LoginVK handles POST /auth/vk.
func (h *AuthHandler) LoginVK(w http.ResponseWriter, r *http.Request) {
	var req loginVKRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.LoginVK(r.Context(), auth.LoginInput{LaunchParams: req.LaunchParams})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, authResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		Role:        result.Role.String(),
		Boec:        toBoecResponse(result.Boec),
	})
}
