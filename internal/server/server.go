// Package server exposes series expansion over HTTP.
//
//	POST /series        expand one expression
//	POST /series/batch  expand many expressions
//	GET  /health        liveness check
//	GET  /metrics       Prometheus metrics
//	GET  /schema        endpoint schema
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/njchilds90/goseries/internal/batch"
	"github.com/njchilds90/goseries/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *Metrics
	runner  *batch.Runner
	router  chi.Router
}

// New builds the router. A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
		runner:  batch.New(cfg.Batch.Workers, logger),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(recovery(s.logger))
	r.Use(accessLog(s.logger, s.metrics))
	r.Post("/series", s.handleExpand)
	r.Post("/series/batch", s.handleBatch)
	r.Get("/health", s.handleHealth)
	r.Get("/schema", s.handleSchema)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Metrics() *Metrics { return s.metrics }

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
		IdleTimeout:       s.cfg.Server.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	s.logger.Info("goseries server listening", "addr", ln.Addr().String())
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("goseries server stopped")
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
