package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	wcerrors "wordcounter/internal/errors"
)

// ErrorResponse represents an HTTP error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes an error response to the HTTP response writer. The body
// carries only the client-facing message.
func WriteError(w http.ResponseWriter, err error, status int) error {
	return WriteJSON(w, ErrorResponse{Error: wcerrors.MessageOf(err)}, status)
}

// WriteWcError writes err with automatic status code mapping
func WriteWcError(w http.ResponseWriter, err error) error {
	return WriteError(w, err, MapErrorToStatus(wcerrors.CodeOf(err)))
}

// MapErrorToStatus maps error codes to HTTP status codes. A missing file is
// reported as a server failure, matching the existing clients' expectations.
func MapErrorToStatus(code wcerrors.ErrorCode) int {
	switch code {
	case wcerrors.InvalidInput:
		return http.StatusBadRequest // 400
	case wcerrors.AuthFailure:
		return http.StatusUnauthorized // 401
	case wcerrors.NotFound, wcerrors.IOError, wcerrors.DecodeError, wcerrors.InternalError:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// WriteJSON writes a JSON response. The status line is already sent when
// encoding fails, so the returned error can only be logged.
func WriteJSON(w http.ResponseWriter, data interface{}, status int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// BadRequest writes a 400 Bad Request error
func BadRequest(w http.ResponseWriter, message string) error {
	return WriteWcError(w, wcerrors.NewInvalidInputError(message))
}

// InternalError writes a 500 Internal Server Error with the generic message
func InternalError(w http.ResponseWriter) error {
	return WriteError(w, wcerrors.NewWcError(wcerrors.InternalError, wcerrors.MsgInternalServer, nil), http.StatusInternalServerError)
}
