package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/sopdex/internal/catalog"
	"github.com/dgallion1/sopdex/internal/config"
)

// Server is the HTTP API server for sopdex.
type Server struct {
	router  chi.Router
	catalog *catalog.Catalog
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cat *catalog.Catalog, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		catalog: cat,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints; bearer auth applies only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/sops", s.handleListSOPs)
		r.Get("/api/sops/{sopID}/sections", s.handleSections)
		r.Get("/api/sops/{sopID}/sections/{number}", s.handleSection)
		r.Get("/api/sops/{sopID}/text", s.handleRawText)
		r.Get("/api/search", s.handleSearch)

		r.Post("/api/pcr/annealing-temp", s.handleAnnealingTemp)
		r.Post("/api/gibson/calculate", s.handleGibson)
		r.Post("/api/restriction/digest", s.handleDigest)
		r.Post("/api/ligation/insert-vector-ratio", s.handleInsertVectorRatio)
		r.Post("/api/oligo/annealing", s.handleOligoAnnealing)
		r.Post("/api/crispr/grna-primers", s.handleCRISPRPrimers)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
