package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the fallback backend origin when CAMPUS_API_BASE_URL is
// not supplied.
const DefaultBaseURL = "https://campus-connect-backend.onrender.com/api"

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	StateFile      string
	MaxUploadSize  int64
	IDCardMaxDim   int
	RateLimitRPM   int
	CacheTTL       time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:        getEnv("CAMPUS_API_BASE_URL", DefaultBaseURL),
		RequestTimeout: getDuration("CAMPUS_REQUEST_TIMEOUT", 30*time.Second),
		StateFile:      getEnv("CAMPUS_STATE_FILE", "./state/campus.db"),
		MaxUploadSize:  getInt64("CAMPUS_MAX_UPLOAD_SIZE", 5*1024*1024),
		IDCardMaxDim:   getInt("CAMPUS_IDCARD_MAX_DIM", 1600),
		RateLimitRPM:   getInt("CAMPUS_RATE_LIMIT_RPM", 300),
		CacheTTL:       getDuration("CAMPUS_CACHE_TTL", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("CAMPUS_API_BASE_URL cannot be empty")
	}

	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("CAMPUS_API_BASE_URL must be an http(s) origin")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("CAMPUS_REQUEST_TIMEOUT must be positive")
	}

	if strings.TrimSpace(c.StateFile) == "" {
		return fmt.Errorf("CAMPUS_STATE_FILE cannot be empty")
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("CAMPUS_MAX_UPLOAD_SIZE must be positive")
	}

	if c.IDCardMaxDim <= 0 {
		return fmt.Errorf("CAMPUS_IDCARD_MAX_DIM must be positive")
	}

	return nil
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}
