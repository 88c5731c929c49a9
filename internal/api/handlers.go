package api

import (
	"io"
	"net/http"

	wcerrors "wordcounter/internal/errors"
	"wordcounter/internal/stats"
)

// CountResponse is the success body of POST /count
type CountResponse struct {
	Result stats.Result `json:"result"`
}

// handleDiscovery serves the static client configuration document
func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	s.logWriteError(r, WriteJSON(w, DiscoveryDocument(), http.StatusOK))
}

// handleCount handles POST /count
func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.HTTP.MaxBodyBytes))
	if err != nil {
		s.logger.Debug("Failed to read request body",
			"error", err.Error(),
			"requestID", GetRequestID(r.Context()),
		)
		s.logWriteError(r, BadRequest(w, wcerrors.MsgMissingPath))
		return
	}

	req, err := stats.DecodeRequest(body)
	if err != nil {
		// Every malformed body reads as a missing path over HTTP; only the
		// wrong-type case keeps its own message.
		msg := wcerrors.MessageOf(err)
		if msg != wcerrors.MsgPathNotString {
			msg = wcerrors.MsgMissingPath
		}
		s.logWriteError(r, BadRequest(w, msg))
		return
	}

	result, err := s.counter.Count(req.FilePath)
	if err != nil {
		s.logger.Warn("Count failed",
			"path", req.FilePath,
			"code", string(wcerrors.CodeOf(err)),
			"error", err.Error(),
			"requestID", GetRequestID(r.Context()),
		)
		s.logWriteError(r, WriteWcError(w, err))
		return
	}

	s.logWriteError(r, WriteJSON(w, CountResponse{Result: result}, http.StatusOK))
}

// logWriteError records a response that could not be delivered.
func (s *Server) logWriteError(r *http.Request, err error) {
	if err == nil {
		return
	}
	s.logger.Warn("Failed to write response",
		"path", r.URL.Path,
		"error", err.Error(),
		"requestID", GetRequestID(r.Context()),
	)
}
