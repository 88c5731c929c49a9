// Package auth implements the optional static API key check for the HTTP
// transport.
package auth

import "crypto/subtle"

// HeaderName is the request header that carries the API key.
const HeaderName = "X-API-Key"

// Error codes for authentication failures
const (
	ErrCodeMissingKey = "missing_key"
	ErrCodeInvalidKey = "invalid_key"
)

// AuthResult represents the result of an authentication attempt
type AuthResult struct {
	Authenticated bool   `json:"authenticated"`
	ErrorCode     string `json:"error_code,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// StaticKey compares requests against one shared secret fixed at startup.
// The zero value, or an empty key, accepts every request.
type StaticKey struct {
	key string
}

// NewStaticKey creates an authenticator for key.
func NewStaticKey(key string) *StaticKey {
	return &StaticKey{key: key}
}

// Enabled reports whether a key is configured.
func (s *StaticKey) Enabled() bool {
	return s != nil && s.key != ""
}

// Authenticate checks a presented key. Comparison runs in constant time
// relative to the presented value.
func (s *StaticKey) Authenticate(presented string) *AuthResult {
	result := &AuthResult{}

	if !s.Enabled() {
		result.Authenticated = true
		return result
	}

	if presented == "" {
		result.ErrorCode = ErrCodeMissingKey
		result.ErrorMessage = HeaderName + " header required"
		return result
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(s.key)) != 1 {
		result.ErrorCode = ErrCodeInvalidKey
		result.ErrorMessage = "API key does not match"
		return result
	}

	result.Authenticated = true
	return result
}
