package mcp

import "wordcounter/internal/stats"

// Response is one line written to stdout. Exactly one of Result or Error
// is set; error messages are never empty.
type Response struct {
	Result *stats.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// NewResultResponse creates a success response
func NewResultResponse(result stats.Result) *Response {
	return &Response{Result: &result}
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) *Response {
	return &Response{Error: message}
}

// IsError reports whether the response carries an error
func (r *Response) IsError() bool {
	return r.Result == nil
}
