package models

import "time"

// SuccessResponse is the envelope of every successful API response.
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Always true
	// example: true
	Success bool `json:"success"`

	// Payload
	Data any `json:"data,omitempty"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Route not found
	Error string `json:"error"`

	// Offending field for validation errors
	Field string `json:"field,omitempty"`
}

// HealthResponse represents the health check body
// swagger:model HealthResponse
type HealthResponse struct {
	// example: OK
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Session identifies the client context a request runs in.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether a user is bound to the session.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}
