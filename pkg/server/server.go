// Package server exposes the slider pipeline over HTTP.
//
// # Routes
//
//	GET    /healthz                  build info
//	POST   /v1/plan                  settings -> segment plan
//	POST   /v1/nearest               settings + point -> slider value
//	POST   /v1/render/{format}       settings + render options -> artifact
//	GET    /v1/presets               list presets
//	GET    /v1/presets/{name}        get a preset
//	PUT    /v1/presets/{name}        create or replace a preset from settings
//	DELETE /v1/presets/{name}        delete a preset
//	GET    /v1/presets/{name}/plan   plan a stored preset
//
// Request bodies are JSON. Settings fields left out keep their defaults;
// unknown fields are rejected. Errors are returned as
// {"error": "...", "code": "..."} with the status from [errors.HTTPStatus].
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/slidertrack/pkg/pipeline"
	"github.com/matzehuels/slidertrack/pkg/preset"
)

// Timeouts applied by Serve.
const (
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	runner  *pipeline.Runner
	presets preset.Store
	logger  *log.Logger
	router  chi.Router
}

// New creates a server. presets may be nil, in which case the preset routes
// report UNSUPPORTED.
func New(runner *pipeline.Runner, presets preset.Store, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, presets: presets, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(DefaultRequestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/plan", s.handlePlan)
		r.Post("/nearest", s.handleNearest)
		r.Post("/render/{format}", s.handleRender)

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", s.handleListPresets)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.handleGetPreset)
				r.Put("/", s.handlePutPreset)
				r.Delete("/", s.handleDeletePreset)
				r.Get("/plan", s.handlePresetPlan)
			})
		})
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
