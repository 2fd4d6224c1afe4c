// Package server exposes the chart pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz
//	POST   /v1/render?format=svg|png|pdf|json     body: chart (JSON or TOML)
//	GET    /v1/charts
//	POST   /v1/charts                             body: chart (JSON or TOML)
//	GET    /v1/charts/{id}
//	DELETE /v1/charts/{id}
//	GET    /v1/charts/{id}/render?format=...
//
// Render endpoints also accept width, height and scale query parameters.
// Errors are JSON objects carrying the error code of pkg/errors.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/store"
)

// DefaultMaxBodyBytes limits request bodies.
const DefaultMaxBodyBytes = 4 << 20

// Config configures a Server.
type Config struct {
	Runner *pipeline.Runner
	// Store backs /v1/charts. Nil uses an in-memory store.
	Store        store.Store
	Logger       *log.Logger
	MaxBodyBytes int64
	// RenderTimeout bounds a single render. Zero means no limit.
	RenderTimeout time.Duration
}

// Server is the HTTP render service.
type Server struct {
	runner        *pipeline.Runner
	store         store.Store
	logger        *log.Logger
	maxBody       int64
	renderTimeout time.Duration
	router        chi.Router
}

// New creates a server from cfg.
func New(cfg Config) *Server {
	s := &Server{
		runner:        cfg.Runner,
		store:         cfg.Store,
		logger:        cfg.Logger,
		maxBody:       cfg.MaxBodyBytes,
		renderTimeout: cfg.RenderTimeout,
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Route("/charts", func(r chi.Router) {
			r.Get("/", s.handleListCharts)
			r.Post("/", s.handleCreateChart)
			r.Get("/{id}", s.handleGetChart)
			r.Delete("/{id}", s.handleDeleteChart)
			r.Get("/{id}/render", s.handleRenderChart)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody(r, "METHOD_NOT_ALLOWED", r.Method+" not allowed"))
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases the runner and store.
func (s *Server) Close() error {
	return errors.Join(s.runner.Close(), s.store.Close())
}
