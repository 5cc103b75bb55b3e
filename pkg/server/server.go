package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"injala/certguard/pkg/config"
	"injala/certguard/pkg/pipeline"
	"injala/certguard/pkg/rules"
	"injala/certguard/pkg/telemetry/metrics"
)

// Server is the HTTP surface of the validation engine.
type Server struct {
	config      *config.ServerConfig
	pipeline    *pipeline.Pipeline
	metrics     *metrics.Collector
	metricsPath string
	logger      *slog.Logger

	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool

	rulesMu sync.RWMutex
	spec    *rules.Spec
}

// NewServer creates a server validating against the given rule
// specification. collector may be nil to disable the metrics endpoint.
func NewServer(cfg *config.Config, p *pipeline.Pipeline, collector *metrics.Collector, spec *rules.Spec) *Server {
	s := &Server{
		config:       &cfg.Server,
		pipeline:     p,
		metrics:      collector,
		logger:       slog.Default().With("component", "server"),
		shutdownChan: make(chan struct{}),
		spec:         spec,
	}
	if collector != nil && cfg.Telemetry.Metrics.IsEnabled() {
		s.metricsPath = cfg.Telemetry.Metrics.Path
	}
	return s
}

// SetRules swaps in a new rule specification. Requests already past the
// lock finish against the rules they started with.
func (s *Server) SetRules(spec *rules.Spec) {
	s.rulesMu.Lock()
	s.spec = spec
	s.rulesMu.Unlock()
	s.logger.Info("rules updated")
}

// Rules returns the active rule specification.
func (s *Server) Rules() *rules.Spec {
	s.rulesMu.RLock()
	defer s.rulesMu.RUnlock()
	return s.spec
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:           s.config.ListenAddress,
		Handler:        s.Handler(),
		ReadTimeout:    s.config.ReadTimeout,
		WriteTimeout:   s.config.WriteTimeout,
		IdleTimeout:    s.config.IdleTimeout,
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server", "address", s.config.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully stops the server, draining in-flight requests up
// to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.logger.Info("initiating graceful shutdown", "timeout", s.config.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("server stopped")
	})

	return shutdownErr
}

// IsRunning reports whether Start has been called and Shutdown has not
// completed.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/validate", s.handleValidate)
	if s.metricsPath != "" {
		mux.Handle(s.metricsPath, s.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = RequestIDMiddleware(handler)
	handler = LoggingMiddleware(handler)
	handler = RecoveryMiddleware(handler)
	return handler
}
