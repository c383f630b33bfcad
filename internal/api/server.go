// Package api exposes the JSON/SSE HTTP surface: the streaming chat
// endpoint, session CRUD, the style catalog and health probes.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiconic/aiconic/internal/style"
)

// ServerConfig contains configuration for the API server.
type ServerConfig struct {
	Logger      *slog.Logger
	Runner      ChatRunner      // required
	Store       SessionStore    // required
	Styles      *style.Registry // required
	Pool        *pgxpool.Pool   // optional: nil disables pool stats in /ready
	CORSOrigins []string        // allowed origins; empty allows any
}

// Server is the HTTP server for the icon service API.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates the server with all routes and middleware configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Runner == nil {
		return nil, errors.New("chat runner is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("session store is required")
	}
	if cfg.Styles == nil {
		return nil, errors.New("style registry is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ch := &chatHandler{
		runner: cfg.Runner,
		store:  cfg.Store,
		styles: cfg.Styles,
		logger: logger,
	}
	sh := &sessionHandler{store: cfg.Store, logger: logger}
	st := &styleHandler{styles: cfg.Styles}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/chat", ch.stream)

	mux.HandleFunc("GET /api/sessions", sh.list)
	mux.HandleFunc("POST /api/sessions", sh.create)
	mux.HandleFunc("GET /api/sessions/{id}", sh.get)
	mux.HandleFunc("DELETE /api/sessions/{id}", sh.delete)
	mux.HandleFunc("POST /api/sessions/{id}/messages", sh.appendMessage)

	mux.HandleFunc("GET /api/styles", st.list)

	// Middleware stack, outermost first:
	//   Recovery → RequestID → Logging → CORS → Routes
	// RequestID precedes Logging so request_id is available in log attributes.
	// CORS precedes routing so preflight OPTIONS is answered for every path.
	var handler http.Handler = mux
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	// Health probes bypass the middleware stack.
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /api/health", health)
	topMux.Handle("GET /api/ready", readiness(cfg.Pool))
	topMux.Handle("/", handler)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}
