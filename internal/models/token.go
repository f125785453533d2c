package models

import "time"

// RefreshToken is one row of the refresh-token ledger. Rows are created at
// every login and every rotation and are never deleted in normal operation;
// a token is redeemable iff !IsUsed && !IsRevoked && now < ExpiresAt.
type RefreshToken struct {
	ID        string    `json:"id"`         // UUID
	UserID    string    `json:"user_id"`    // owning user
	Token     string    `json:"token"`      // opaque random value, unique
	ExpiresAt time.Time `json:"expires_at"` //
	IsUsed    bool      `json:"is_used"`    // set once, at redemption
	IsRevoked bool      `json:"is_revoked"` // administrative kill switch
	CreatedAt time.Time `json:"created_at"` //
}
