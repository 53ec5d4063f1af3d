package config

import "os"

// GetEnv reads an environment variable with a fallback for local
// development.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// JWTSecret is the HS256 signing key for simulator-issued tokens.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "dev-only-secret"))
}
