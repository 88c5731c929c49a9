package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"wordcounter/internal/api"
	"wordcounter/internal/config"
	"wordcounter/internal/stats"
)

// shutdownTimeout bounds graceful shutdown after a signal.
const shutdownTimeout = 10 * time.Second

// runHTTP serves the HTTP API until the server fails or a shutdown signal
// arrives.
func runHTTP(cfg *config.Config, o *options, s streams, logger *slog.Logger) error {
	if o.port < 0 || o.port > 65535 {
		return fmt.Errorf("invalid port %d", o.port)
	}
	addr := net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(o.port))

	server, err := api.NewServer(addr, stats.NewEngine(logger), logger, api.ServerConfig{
		APIKey: o.apiKey,
		HTTP:   cfg.HTTP,
	})
	if err != nil {
		return err
	}

	// Setup graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	serverErr := make(chan error, 1)
	go func() {
		fmt.Fprintf(s.stderr, "wordcounter HTTP server listening on http://%s\n", addr)
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error",
				"error", err.Error(),
			)
			return err
		}
	case sig := <-shutdown:
		logger.Info("Received shutdown signal",
			"signal", sig.String(),
		)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during shutdown",
				"error", err.Error(),
			)
			return err
		}

		logger.Info("Server stopped gracefully")
	}

	return nil
}
