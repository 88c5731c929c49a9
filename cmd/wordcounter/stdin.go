package main

import (
	"log/slog"

	"wordcounter/internal/mcp"
	"wordcounter/internal/stats"
	"wordcounter/internal/version"
)

// runStdin answers line-delimited requests until stdin closes.
func runStdin(s streams, logger *slog.Logger) error {
	server := mcp.NewServer(version.Version, stats.NewEngine(logger), logger)
	server.SetStdin(s.stdin)
	server.SetStdout(s.stdout)

	if err := server.Start(); err != nil {
		logger.Error("Stdin server error",
			"error", err.Error(),
		)
		return err
	}

	return nil
}
