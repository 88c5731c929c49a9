// Package mcp serves count requests over a newline-delimited JSON protocol
// on stdin/stdout.
package mcp

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	wcerrors "wordcounter/internal/errors"
	"wordcounter/internal/slogutil"
	"wordcounter/internal/stats"
)

// Server reads one request per line and answers each before reading the
// next. It has no other state.
type Server struct {
	stdin   io.Reader
	stdout  io.Writer
	reader  *bufio.Reader
	writer  *bufio.Writer
	logger  *slog.Logger
	version string
	counter stats.Counter
}

// NewServer creates a stdin server backed by counter.
func NewServer(version string, counter stats.Counter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slogutil.NewDiscardLogger()
	}
	return &Server{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		logger:  logger,
		version: version,
		counter: counter,
	}
}

// Start runs the request loop until end of input. Per-request failures are
// answered on stdout and never stop the loop; only read or write faults on
// the streams themselves are returned.
func (s *Server) Start() error {
	s.logger.Info("Stdin server starting",
		"version", s.version,
	)

	handled := 0
	for {
		line, err := s.readLine()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("Stdin server shutting down (EOF)",
					"requests", handled,
				)
				return nil
			}
			s.logger.Error("Error reading line",
				"error", err.Error(),
			)
			return err
		}

		response := s.handleLine(line)
		handled++

		if err := s.writeResponse(response); err != nil {
			s.logger.Error("Error writing response",
				"error", err.Error(),
			)
			return err
		}
	}
}

// SetStdin sets the input stream (for testing)
func (s *Server) SetStdin(r io.Reader) {
	s.stdin = r
	s.reader = nil // Reset reader so it will be recreated with new stream
}

// SetStdout sets the output stream (for testing)
func (s *Server) SetStdout(w io.Writer) {
	s.stdout = w
	s.writer = nil
}

// handleLine turns one input line into exactly one response.
func (s *Server) handleLine(line []byte) *Response {
	req, err := stats.DecodeRequest(line)
	if err != nil {
		s.logger.Debug("Rejected request",
			"reason", wcerrors.MessageOf(err),
		)
		return NewErrorResponse(wcerrors.MessageOf(err))
	}

	result, err := s.counter.Count(req.FilePath)
	if err != nil {
		return s.errorResponse(req.FilePath, err)
	}
	return NewResultResponse(result)
}

func (s *Server) errorResponse(path string, err error) *Response {
	code := wcerrors.CodeOf(err)
	switch code {
	case wcerrors.InvalidInput, wcerrors.NotFound:
		s.logger.Debug("Count failed", "path", path, "code", string(code))
	case wcerrors.IOError, wcerrors.DecodeError:
		s.logger.Warn("Count failed", "path", path, "code", string(code), "error", err.Error())
	case wcerrors.AuthFailure, wcerrors.InternalError:
		s.logger.Error("Count failed", "path", path, "code", string(code), "error", err.Error())
	}
	return NewErrorResponse(wcerrors.MessageOf(err))
}
