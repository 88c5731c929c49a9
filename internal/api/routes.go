package api

import "net/http"

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Discovery. GET patterns also match HEAD.
	s.router.HandleFunc("GET /{$}", s.handleDiscovery)
	s.router.HandleFunc("POST /{$}", s.handleDiscovery)

	// Counting, behind the optional API key
	requireKey := APIKeyMiddleware(s.auth, s.logger)
	s.router.Handle("POST /count", requireKey(http.HandlerFunc(s.handleCount)))
}
