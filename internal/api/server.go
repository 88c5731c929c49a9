package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"wordcounter/internal/auth"
	"wordcounter/internal/config"
	"wordcounter/internal/slogutil"
	"wordcounter/internal/stats"
)

// ServerConfig holds the per-process settings injected into the server.
type ServerConfig struct {
	// APIKey, when non-empty, must be presented in the X-API-Key header
	// on POST /count.
	APIKey string
	HTTP   config.HTTPConfig
}

// DefaultServerConfig returns an open server with default HTTP tuning
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		HTTP: config.DefaultConfig().HTTP,
	}
}

// Server represents the HTTP API server
type Server struct {
	router  *http.ServeMux
	server  *http.Server
	addr    string
	logger  *slog.Logger
	counter stats.Counter
	auth    *auth.StaticKey
	config  ServerConfig
}

// NewServer creates a new HTTP server instance
func NewServer(addr string, counter stats.Counter, logger *slog.Logger, cfg ServerConfig) (*Server, error) {
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}

	s := &Server{
		addr:    addr,
		logger:  logger,
		counter: counter,
		auth:    auth.NewStaticKey(cfg.APIKey),
		config:  cfg,
		router:  http.NewServeMux(),
	}

	s.registerRoutes()

	handler, err := s.applyMiddleware(s.router)
	if err != nil {
		return nil, err
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout(),
		WriteTimeout: cfg.HTTP.WriteTimeout(),
		IdleTimeout:  cfg.HTTP.IdleTimeout(),
	}

	return s, nil
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		"addr", s.addr,
		"auth", s.auth.Enabled(),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server shut down successfully")
	return nil
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the handler with middleware in the correct order
func (s *Server) applyMiddleware(handler http.Handler) (http.Handler, error) {
	// Apply middleware in reverse order (last one wraps first)
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	if s.config.HTTP.CORS {
		handler = CORSMiddleware()(handler)
	}
	if s.config.HTTP.Compress {
		wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(256))
		if err != nil {
			return nil, fmt.Errorf("configure compression: %w", err)
		}
		handler = wrap(handler)
	}
	return handler, nil
}
