// Package jwt provides the signed access-token and opaque refresh-token
// primitives: minting, full validation for protected requests, and the
// relaxed "expired but well-signed" parse used during token refresh.
package jwt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// refreshTokenBytes is the entropy of an opaque refresh token.
const refreshTokenBytes = 64

// Config holds the signing parameters for access and refresh tokens.
type Config struct {
	Secret          []byte
	Issuer          string
	Audience        string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Claims are the access-token claims: subject is the user id, plus email
// and role claims, and a unique jti per token.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// NewAccessToken mints an HS256-signed access token for the user.
func NewAccessToken(cfg Config, userID, email string, roles []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.AccessTokenTTL)

	claims := Claims{
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.New().String(),
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateAccessToken fully validates an access token: HS256 signature,
// issuer, audience and lifetime. Used by the bearer middleware.
func ValidateAccessToken(cfg Config, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return cfg.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ParseExpiredToken verifies signature, algorithm, issuer and audience of
// an access token while deliberately skipping lifetime validation. This is
// the refresh-flow input: the token is expected to be expired here.
func ParseExpiredToken(cfg Config, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return cfg.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	// Lifetime is skipped, issuer and audience are not
	if claims.Issuer != cfg.Issuer {
		return nil, fmt.Errorf("invalid token issuer")
	}
	if !containsAudience(claims.Audience, cfg.Audience) {
		return nil, fmt.Errorf("invalid token audience")
	}

	return claims, nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

// NewRefreshToken generates a cryptographically random opaque refresh
// token (64 bytes, base64-encoded) and its expiry.
func NewRefreshToken(cfg Config) (string, time.Time, error) {
	tokenBytes := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate random token: %w", err)
	}

	token := base64.StdEncoding.EncodeToString(tokenBytes)
	expiresAt := time.Now().Add(cfg.RefreshTokenTTL)

	return token, expiresAt, nil
}
