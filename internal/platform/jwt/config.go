package jwtmw

import (
	"os"
	"time"
)

// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
// When it is empty, the API is served without authentication.
const EnvKeyJWTSecret = "JWT_SECRET"

// Config holds JWT configuration.
type Config struct {
	Secret     string        // HMAC secret; empty disables authentication
	Expiration time.Duration // lifetime of tokens issued by the CLI
}

// Enabled reports whether API requests must carry a bearer token.
func (c Config) Enabled() bool {
	return c.Secret != ""
}

// LoadConfig loads JWT configuration from environment variables.
func LoadConfig() Config {
	exp := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			exp = d
		}
	}
	return Config{
		Secret:     os.Getenv(EnvKeyJWTSecret),
		Expiration: exp,
	}
}
