package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	boecIDKey    ctxKey = "boec_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// RoleAdmin is the role value that grants administrative operations.
const RoleAdmin = "admin"

// WithBoecID stores the authenticated boec ID in the context.
func WithBoecID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, boecIDKey, id)
}

// BoecIDFromCtx extracts the boec ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func BoecIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(boecIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the caller's role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx returns the caller's role, or "" if absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// IsAdminCtx reports whether the caller carries the admin role.
func IsAdminCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx) == RoleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
