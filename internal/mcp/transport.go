package mcp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// readLine reads the next request line. A final line without a trailing
// newline is returned as-is; io.EOF is returned once input is exhausted.
func (s *Server) readLine() ([]byte, error) {
	// Lazily initialize the reader on first use
	if s.reader == nil {
		s.reader = bufio.NewReader(s.stdin)
	}

	line, err := s.reader.ReadBytes('\n')
	if len(line) > 0 {
		s.logger.Debug("Received line",
			"bytes", len(line),
		)
		return line, nil
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("error reading from stdin: %w", err)
	}
	return nil, io.EOF
}

// writeResponse writes a response as a single JSON line and flushes it so a
// line-reading client sees it immediately.
func (s *Server) writeResponse(resp *Response) error {
	if s.writer == nil {
		s.writer = bufio.NewWriter(s.stdout)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode appends the terminating newline.
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("error marshaling response: %w", err)
	}

	s.logger.Debug("Sending response",
		"raw", string(bytes.TrimRight(buf.Bytes(), "\n")),
	)

	if _, err := s.writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing to stdout: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("error flushing stdout: %w", err)
	}
	return nil
}
