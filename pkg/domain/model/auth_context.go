package model

import (
	"context"

	"github.com/orgward/knock/pkg/domain/types"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	authContextKey contextKey = "authContext"
)

// AuthContext carries the authenticated requester's identity. It is
// attached by the auth middleware and preserved across the async
// notification boundary.
type AuthContext struct {
	UserID   types.UserID `json:"user_id,omitempty"`
	Email    string       `json:"email,omitempty"`
	Name     string       `json:"name,omitempty"`
	Username string       `json:"username,omitempty"`
}

// WithAuthContext adds AuthContext to the context
func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	if authCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, authContextKey, authCtx)
}

// GetAuthContext retrieves AuthContext from the context
func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*AuthContext)
	return authCtx, ok
}

// Clone creates a copy of the AuthContext
func (a *AuthContext) Clone() *AuthContext {
	if a == nil {
		return nil
	}
	return &AuthContext{
		UserID:   a.UserID,
		Email:    a.Email,
		Name:     a.Name,
		Username: a.Username,
	}
}
