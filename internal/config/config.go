package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresPort     string
	PostgresServer   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret    string
	JWTAlgorithm string

	AccessTokenExpireMinutes  int
	RefreshTokenExpireMinutes int

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults for non-secret values.
func Load() *Config {
	return &Config{
		ServerPort:                getEnv("SERVER_PORT", "8080"),
		PostgresUser:              getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword:          os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:                getEnv("POSTGRES_DB", "jobboard"),
		PostgresPort:              getEnv("POSTGRES_PORT", "5432"),
		PostgresServer:            getEnv("POSTGRES_SERVER", "localhost"),
		RedisAddr:                 getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:                   getEnvInt("REDIS_DB", 0),
		RedisPass:                 os.Getenv("REDIS_PASSWORD"),
		JWTSecret:                 getEnv("JWT_SECRET", "change-me"),
		JWTAlgorithm:              getEnv("JWT_ALGORITHM", "HS256"),
		AccessTokenExpireMinutes:  getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		RefreshTokenExpireMinutes: getEnvInt("REFRESH_TOKEN_EXPIRE_MINUTES", 60*24*7),
		SwaggerHost:               os.Getenv("SWAGGER_HOST"),
	}
}

// DatabaseDSN assembles the PostgreSQL connection string from its components.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.PostgresServer, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort,
	)
}

// AccessTokenTTL returns the access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpireMinutes) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
