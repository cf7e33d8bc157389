// Package auth handles user accounts and bearer-token authentication for
// GeoGuide. It provides signup, login, and session restore via signed JWTs,
// plus the middleware gate that protects authenticated routes.
package auth

import (
	"time"
)

// User represents a registered GeoGuide user. This is the domain model used
// throughout the application. Database scanning and JSON marshaling use this
// struct directly.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON responses.
	CreatedAt    time.Time `json:"createdAt"`
}

// --- Request DTOs (bound from HTTP requests) ---

// SignupRequest holds the data submitted to POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds the data submitted to POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
