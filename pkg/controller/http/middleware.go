package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

type ctxKey string

const (
	userCtxKey ctxKey = "user"
	orgCtxKey  ctxKey = "organization"
)

// userFromContext returns the authenticated user attached by RequireAuth
func userFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*model.User)
	return user, ok
}

// orgFromContext returns the organization attached by RequireOrg
func orgFromContext(ctx context.Context) (*model.Organization, bool) {
	org, ok := ctx.Value(orgCtxKey).(*model.Organization)
	return org, ok
}

// Middleware provides common HTTP middleware
type Middleware struct {
	repo interfaces.Repository
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(repo interfaces.Repository) *Middleware {
	return &Middleware{
		repo: repo,
	}
}

// RequireAuth authenticates the request by API key (Authorization:
// Bearer) and attaches the user to the request context
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeDetail(w, r, http.StatusUnauthorized, "missing or malformed Authorization header")
			return
		}

		user, err := m.repo.GetUserByAPIKey(r.Context(), types.APIKey(token))
		if err != nil {
			if !errors.Is(err, model.ErrUserNotFound) {
				ctxlog.From(r.Context()).Error("Failed to look up API key", "error", err)
				writeDetail(w, r, http.StatusInternalServerError, "internal error")
				return
			}
			writeDetail(w, r, http.StatusUnauthorized, "invalid API key")
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		ctx = model.WithAuthContext(ctx, &model.AuthContext{
			UserID:   user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Username: user.Username,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireOrg resolves the organization from the URL and requires the
// authenticated user to be a member of it (org read scope)
func (m *Middleware) RequireOrg(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeDetail(w, r, http.StatusUnauthorized, "authentication required")
			return
		}

		slug := types.OrgSlug(chi.URLParam(r, "orgSlug"))
		org, err := m.repo.GetOrganization(r.Context(), slug)
		if err != nil {
			if errors.Is(err, model.ErrOrganizationNotFound) {
				writeDetail(w, r, http.StatusNotFound, "organization not found")
				return
			}
			ctxlog.From(r.Context()).Error("Failed to get organization", "error", err)
			writeDetail(w, r, http.StatusInternalServerError, "internal error")
			return
		}

		if _, err := m.repo.GetMembership(r.Context(), org.Slug, user.ID); err != nil {
			if errors.Is(err, model.ErrMembershipNotFound) {
				writeDetail(w, r, http.StatusForbidden, "not a member of this organization")
				return
			}
			ctxlog.From(r.Context()).Error("Failed to get membership", "error", err)
			writeDetail(w, r, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), orgCtxKey, org)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			r = r.WithContext(ctxlog.With(r.Context(), ctxlog.From(ctx)))

			logger := ctxlog.From(r.Context())
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
