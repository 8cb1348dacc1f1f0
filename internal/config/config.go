package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"

	"github.com/ndewijer/Portfolio-Dashboard-Backend/internal/apperrors"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	CORS      CORSConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// UpstreamConfig holds the access token and endpoints of the portfolio services.
// None of these have defaults.
type UpstreamConfig struct {
	AccessToken         string
	AuthEndpoint        string
	HoldingsEndpoint    string
	PerformanceEndpoint string
	Timeout             time.Duration // 0 means no timeout
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// RateLimitConfig holds the token bucket settings for the data endpoint.
// A RequestsPerSecond of 0 disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads configuration from environment variables and .env file.
// Missing upstream settings are not an error here; see UpstreamConfig.Validate.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	accessToken, err := loadAccessToken()
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Upstream: UpstreamConfig{
			AccessToken:         accessToken,
			AuthEndpoint:        os.Getenv("AUTH_API_ENDPOINT"),
			HoldingsEndpoint:    os.Getenv("HOLDINGS_API_ENDPOINT"),
			PerformanceEndpoint: os.Getenv("PERFORMANCE_API_ENDPOINT"),
			Timeout:             timeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "false") == "true",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// Validate reports which required upstream settings are missing.
// The returned error wraps apperrors.ErrMissingConfiguration.
func (u UpstreamConfig) Validate() error {
	var missing []string
	if u.AccessToken == "" {
		missing = append(missing, "ACCESS_TOKEN")
	}
	if u.AuthEndpoint == "" {
		missing = append(missing, "AUTH_API_ENDPOINT")
	}
	if u.HoldingsEndpoint == "" {
		missing = append(missing, "HOLDINGS_API_ENDPOINT")
	}
	if u.PerformanceEndpoint == "" {
		missing = append(missing, "PERFORMANCE_API_ENDPOINT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrMissingConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// loadAccessToken returns ACCESS_TOKEN, or the decrypted ACCESS_TOKEN_ENCRYPTED
// when a fernet key is configured in ACCESS_TOKEN_KEY.
func loadAccessToken() (string, error) {
	if token := os.Getenv("ACCESS_TOKEN"); token != "" {
		return token, nil
	}

	encrypted := os.Getenv("ACCESS_TOKEN_ENCRYPTED")
	if encrypted == "" {
		return "", nil
	}

	keys, err := fernet.DecodeKeys(os.Getenv("ACCESS_TOKEN_KEY"))
	if err != nil {
		return "", fmt.Errorf("%w: invalid ACCESS_TOKEN_KEY: %v", apperrors.ErrInvalidAccessToken, err)
	}

	plain := fernet.VerifyAndDecrypt([]byte(encrypted), 0, keys)
	if plain == nil {
		return "", apperrors.ErrInvalidAccessToken
	}
	return string(plain), nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
