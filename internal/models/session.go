package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthSession is the single-operator session record persisted under the
// session storage key. This is a convenience gate for the admin surface,
// not a security boundary.
type AuthSession struct {
	Token       string `json:"token"`
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	LoginTime   string `json:"loginTime"`
	ExpiresAt   string `json:"expiresAt"`
	Fingerprint string `json:"fingerprint"`
	RememberMe  bool   `json:"rememberMe"`
}

// Claims embedded in the session JWT.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`

	// Client-reported attributes the fingerprint is derived from.
	UserAgent      string `json:"userAgent,omitempty"`
	Language       string `json:"language,omitempty"`
	Screen         string `json:"screen,omitempty"`
	TimezoneOffset int    `json:"timezoneOffset,omitempty"`
}

type LoginResponse struct {
	Success   bool         `json:"success"`
	Token     string       `json:"token,omitempty"`
	ExpiresIn int          `json:"expires_in,omitempty"`
	Session   *AuthSession `json:"session,omitempty"`
	Message   string       `json:"message,omitempty"`
}
