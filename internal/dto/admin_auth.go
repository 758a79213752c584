package dto

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token"`
	MaxSessions int    `json:"maxSessions"`
}

// LogoutRequest carries the token for clients that send it in the body
// instead of the X-Admin-Token header.
type LogoutRequest struct {
	Token string `json:"token"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type SessionResponse struct {
	Active      bool       `json:"active"`
	Username    string     `json:"username,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	MaxSessions int        `json:"maxSessions,omitempty"`
}
