package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"wordcounter/internal/stats"
)

// runCount counts a single file and prints the result as indented JSON.
func runCount(path string, s streams, logger *slog.Logger) error {
	engine := stats.NewEngine(logger)

	result, err := engine.Count(path)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(s.stdout, string(data))
	return err
}
