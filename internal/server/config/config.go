// Package config collects the server settings from flags and environment
// variables. Flags win over the environment, the environment wins over
// defaults.
package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// Defaults used when neither flag nor environment provides a value.
const (
	DefaultAddress            = ":8080"
	DefaultDatabasePath       = "hopmate.db"
	DefaultJWTIssuer          = "hopmate"
	DefaultJWTAudience        = "hopmate-client"
	DefaultAccessTokenMinutes = 15
	DefaultRefreshTokenDays   = 7
)

// minJWTSecretLen is the shortest secret accepted for HS256 signing.
const minJWTSecretLen = 32

// Config holds the server configuration.
type Config struct {
	Address            string
	DatabasePath       string
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	AccessTokenMinutes int
	RefreshTokenDays   int
	AdminEmail         string
	AdminPassword      string
}

// AccessTokenTTL returns the access-token lifetime as a duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh-token lifetime as a duration.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenDays) * 24 * time.Hour
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT secret is required (set HOPMATE_JWT_SECRET)")
	}
	if len(c.JWTSecret) < minJWTSecretLen {
		return errors.New("JWT secret must be at least 32 bytes")
	}
	if c.AccessTokenMinutes <= 0 {
		return errors.New("access token lifetime must be positive")
	}
	if c.RefreshTokenDays <= 0 {
		return errors.New("refresh token lifetime must be positive")
	}
	if c.AdminEmail != "" && c.AdminPassword == "" {
		return errors.New("admin password is required when admin email is set")
	}
	return nil
}

// Load builds the configuration from the environment and the given flag
// set with arguments. The flag set must not have been parsed yet.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{
		Address:            envString("HOPMATE_ADDRESS", DefaultAddress),
		DatabasePath:       envString("HOPMATE_DATABASE_PATH", DefaultDatabasePath),
		JWTSecret:          envString("HOPMATE_JWT_SECRET", ""),
		JWTIssuer:          envString("HOPMATE_JWT_ISSUER", DefaultJWTIssuer),
		JWTAudience:        envString("HOPMATE_JWT_AUDIENCE", DefaultJWTAudience),
		AccessTokenMinutes: envInt("HOPMATE_ACCESS_TOKEN_MINUTES", DefaultAccessTokenMinutes),
		RefreshTokenDays:   envInt("HOPMATE_REFRESH_TOKEN_DAYS", DefaultRefreshTokenDays),
		AdminEmail:         envString("HOPMATE_ADMIN_EMAIL", ""),
		AdminPassword:      envString("HOPMATE_ADMIN_PASSWORD", ""),
	}

	fs.StringVar(&cfg.Address, "address", cfg.Address, "HTTP listen address")
	fs.StringVar(&cfg.DatabasePath, "database", cfg.DatabasePath, "Path to the SQLite database file")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "JWT signing secret")
	fs.StringVar(&cfg.JWTIssuer, "jwt-issuer", cfg.JWTIssuer, "JWT issuer claim")
	fs.StringVar(&cfg.JWTAudience, "jwt-audience", cfg.JWTAudience, "JWT audience claim")
	fs.IntVar(&cfg.AccessTokenMinutes, "access-token-minutes", cfg.AccessTokenMinutes, "Access token lifetime in minutes")
	fs.IntVar(&cfg.RefreshTokenDays, "refresh-token-days", cfg.RefreshTokenDays, "Refresh token lifetime in days")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
