// Package httpserver exposes the analyzer over HTTP: a health endpoint and
// JSON/multipart analysis endpoints.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"aware/internal/analyzer"
	"aware/internal/config"
)

// Server wires the router to the analyzer.
type Server struct {
	analyzer *analyzer.Analyzer
	cfg      config.ServerConfig
	log      *slog.Logger
}

// New builds the HTTP surface around an analyzer.
func New(a *analyzer.Analyzer, cfg config.ServerConfig, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{analyzer: a, cfg: cfg, log: log}
}

// Router assembles the chi router with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.wrap(s.handleHealth))
		r.Post("/analyze", s.wrap(s.handleAnalyze))
		r.Post("/analyze/upload", s.wrap(s.handleUpload))
	})
	return r
}

// handlerFunc is an http handler that may fail; wrap turns its error into a
// JSON problem response.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	}
}
