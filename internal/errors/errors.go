package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InvalidInput indicates a missing or malformed request field
	InvalidInput ErrorCode = "INVALID_INPUT"
	// AuthFailure indicates a missing or mismatched API key
	AuthFailure ErrorCode = "AUTH_FAILURE"
	// NotFound indicates the requested file does not exist
	NotFound ErrorCode = "NOT_FOUND"
	// IOError indicates the file exists but could not be read
	IOError ErrorCode = "IO_ERROR"
	// DecodeError indicates the file content is not valid UTF-8 text
	DecodeError ErrorCode = "DECODE_ERROR"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Fixed client-facing messages.
const (
	MsgInvalidJSON    = "Invalid JSON input"
	MsgMissingPath    = "Missing file_path in request"
	MsgPathNotString  = "file_path must be a string"
	MsgInvalidAPIKey  = "Invalid API key"
	MsgInternalServer = "Internal server error"
)

// WcError represents a word counter error with a stable code and a
// client-facing message.
type WcError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error     // Underlying error (not exported to JSON)
}

// NewWcError creates a new WcError
func NewWcError(code ErrorCode, message string, cause error) *WcError {
	return &WcError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *WcError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *WcError) Unwrap() error {
	return e.cause
}

// NewNotFoundError reports a path that does not resolve to a file.
func NewNotFoundError(path string, cause error) *WcError {
	return NewWcError(NotFound, fmt.Sprintf("File '%s' not found", path), cause)
}

// NewIOError wraps a read failure; the message is the failure's own text.
func NewIOError(cause error) *WcError {
	return NewWcError(IOError, cause.Error(), cause)
}

// NewDecodeError wraps a text decoding failure.
func NewDecodeError(cause error) *WcError {
	return NewWcError(DecodeError, cause.Error(), cause)
}

// NewInvalidInputError reports a malformed request.
func NewInvalidInputError(message string) *WcError {
	return NewWcError(InvalidInput, message, nil)
}

// NewAuthError reports a rejected API key.
func NewAuthError() *WcError {
	return NewWcError(AuthFailure, MsgInvalidAPIKey, nil)
}

// CodeOf returns the code carried by err, or InternalError when err is not
// a WcError.
func CodeOf(err error) ErrorCode {
	var wcErr *WcError
	if stderrors.As(err, &wcErr) {
		return wcErr.Code
	}
	return InternalError
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var wcErr *WcError
	if stderrors.As(err, &wcErr) {
		return wcErr.Message
	}
	return err.Error()
}
