package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/VMatyagin/so-rest/internal/domain"
)

// clockSkew tolerates small clock drift between API nodes.
const clockSkew = 30 * time.Second

// JWTManager issues and validates session access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the boec's role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the boec id as subject
// and the role as a custom claim. It also returns the expiry time.
func (m *JWTManager) GenerateAccessToken(boecID uuid.UUID, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(m.accessTTL)
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   boecID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expires, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the boec id and role it was issued for. Every failure wraps
// domain.ErrUnauthorized. Tokens without a role claim are plain users.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, domain.Role, error) {
	if tokenString == "" {
		return uuid.Nil, "", fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}

	boecID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject: %w", domain.ErrUnauthorized)
	}

	switch claims.Role {
	case "":
		return boecID, domain.RoleUser, nil
	case domain.RoleUser, domain.RoleAdmin:
		return boecID, claims.Role, nil
	default:
		return uuid.Nil, "", fmt.Errorf("unknown role %q: %w", claims.Role, domain.ErrUnauthorized)
	}
}
