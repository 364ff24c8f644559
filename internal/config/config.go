package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Analysis backend
	BackendURL      string
	UploadPath      string
	ChatPath        string
	AnalysisTimeout time.Duration
	ChatTimeout     time.Duration

	// Upload rules
	MaxResumeBytes       int64
	MinJobDescriptionLen int

	// Sessions
	SessionTTL time.Duration

	// Database (optional, enables persistent share links)
	DatabaseURL string

	// Rate Limiting
	RateLimitRPS int

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Real env takes precedence over .env; missing file is fine
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		BackendURL:           strings.TrimRight(getEnv("BACKEND_URL", "http://127.0.0.1:5000"), "/"),
		UploadPath:           getEnv("BACKEND_UPLOAD_PATH", "/api/upload"),
		ChatPath:             getEnv("BACKEND_CHAT_PATH", "/api/chat"),
		AnalysisTimeout:      getEnvDuration("ANALYSIS_TIMEOUT", 60*time.Second),
		ChatTimeout:          getEnvDuration("CHAT_TIMEOUT", 30*time.Second),
		MaxResumeBytes:       int64(getEnvInt("MAX_RESUME_MB", 10)) * 1024 * 1024,
		MinJobDescriptionLen: getEnvInt("MIN_JOB_DESCRIPTION_LEN", 50),
		SessionTTL:           getEnvDuration("SESSION_TTL", 2*time.Hour),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RateLimitRPS:         getEnvInt("RATE_LIMIT_RPS", 10),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://127.0.0.1:5000",
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values Load cannot default its way out of
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BACKEND_URL must be an absolute URL, got %q", c.BackendURL)
	}
	if !strings.HasPrefix(c.UploadPath, "/") || !strings.HasPrefix(c.ChatPath, "/") {
		return fmt.Errorf("backend paths must start with /")
	}
	if c.AnalysisTimeout <= 0 {
		return fmt.Errorf("ANALYSIS_TIMEOUT must be positive")
	}
	if c.MaxResumeBytes <= 0 {
		return fmt.Errorf("MAX_RESUME_MB must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("90s") or plain seconds ("90")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
