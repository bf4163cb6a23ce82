package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	voterIDKey   ctxKey = "voter_id"
	roleKey      ctxKey = "role"
	requestIDKey ctxKey = "request_id"
)

// adminRole is the role string carried by operator access tokens.
const adminRole = "admin"

// WithVoterID stores the voter ID in the context.
func WithVoterID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, voterIDKey, id)
}

// VoterIDFromCtx extracts the voter ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func VoterIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(voterIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the caller's role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the caller's role. Returns an empty string if absent.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// IsAdminCtx reports whether the authenticated caller carries the admin role.
func IsAdminCtx(ctx context.Context) bool {
	if _, ok := VoterIDFromCtx(ctx); !ok {
		return false
	}
	return RoleFromCtx(ctx) == adminRole
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
