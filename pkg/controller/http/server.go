package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/orgward/knock/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	repo interfaces.Repository,
	requestUC interfaces.IntegrationRequest,
) (*Server, error) {
	router := chi.NewRouter()
	mw := NewMiddleware(repo)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.StripSlashes)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	requestHandler := NewIntegrationRequestHandler(requestUC)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Use(mw.RequireAuth)

		r.Route("/organizations/{orgSlug}", func(r chi.Router) {
			r.Use(mw.RequireOrg)
			r.Post("/integration-request", requestHandler.HandleRequest)
		})
	})

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// Router returns the chi router, mainly for tests
func (s *Server) Router() chi.Router {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "knock",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// writeDetail writes a JSON response with a detail message
func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"detail": detail,
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
