package api

import "time"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"` // ISO date, e.g. "2000-01-31"
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest is the body of POST /api/auth/refresh-token.
// Token is the expired (or still valid) access token, RefreshToken the
// opaque refresh token issued alongside it.
type RefreshTokenRequest struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is the uniform result of register, login and refresh-token.
// Success=false always carries a human-readable Message and is returned
// with HTTP 400; no internal details leak into it.
type AuthResponse struct {
	Token        string    `json:"token,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	Expiration   time.Time `json:"expiration,omitempty"`
	Success      bool      `json:"success"`
	Message      string    `json:"message,omitempty"`
	Roles        []string  `json:"roles"`
	UserID       string    `json:"userId,omitempty"`
}
