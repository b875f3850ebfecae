package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
	"github.com/VMatyagin/so-rest/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.Role, error)
}

// Auth resolves a bearer token to the calling boec and its role. Requests
// without a token pass through anonymously; handlers decide whether that
// is enough.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			boecID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}
			if info := requestInfoFromCtx(r.Context()); info != nil {
				info.boecID = boecID
			}
			ctx := ctxutil.WithBoecID(r.Context(), boecID)
			ctx = ctxutil.WithRole(ctx, role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireBoec returns the authenticated boec id or domain.ErrUnauthorized.
func RequireBoec(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.BoecIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// RequireAdmin returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden if the caller is not an admin.
func RequireAdmin(ctx context.Context) error {
	if _, err := RequireBoec(ctx); err != nil {
		return err
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
