package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Content documents (projects.json / gallery.json)
	DataDir        string
	ContentSource  string // "file" or "s3"
	ReloadDebounce time.Duration
	MediaDir       string // serves /images and /videos
	// S3 content source
	S3Region          string
	S3Bucket          string
	S3Prefix          string
	S3Endpoint        string // optional, for S3-compatible providers
	S3AccessKeyID     string
	S3SecretAccessKey string
	// SMTP Configuration
	MailDriver     string // "smtp" or "log"
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// Submission log
	ContactLogFile string
	// Contact rate limiting (disabled unless explicitly enabled)
	RateLimitEnabled       bool
	RateLimitStore         string // "file", "redis" or "memory"
	RateLimitFile          string
	RateLimitMaxAttempts   int
	RateLimitWindowSeconds int
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// CORS
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DataDir:        strings.TrimRight(getEnv("DATA_DIR", "data"), "/"),
		ContentSource:  strings.ToLower(getEnv("CONTENT_SOURCE", "file")),
		ReloadDebounce: time.Duration(getEnvInt("RELOAD_DEBOUNCE_MS", 50)) * time.Millisecond,
		MediaDir:       strings.TrimRight(getEnv("MEDIA_DIR", "public"), "/"),
		// S3
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Prefix:          strings.Trim(getEnv("S3_PREFIX", "data"), "/"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		// SMTP
		MailDriver:     strings.ToLower(getEnv("MAIL_DRIVER", "smtp")),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "your.email@example.com"),
		ContactLogFile: getEnv("CONTACT_LOG_FILE", "contact_logs.txt"),
		// Rate limiting
		RateLimitEnabled:       getEnvBool("CONTACT_RATE_LIMIT_ENABLED", false),
		RateLimitStore:         strings.ToLower(getEnv("CONTACT_RATE_LIMIT_STORE", "file")),
		RateLimitFile:          getEnv("CONTACT_RATE_LIMIT_FILE", "rate_limit.json"),
		RateLimitMaxAttempts:   getEnvInt("CONTACT_RATE_LIMIT_MAX", 3),
		RateLimitWindowSeconds: getEnvInt("CONTACT_RATE_LIMIT_WINDOW_SECONDS", 300),
		// Redis
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		AllowedOrigins:       getEnvList("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.SMTPFromEmail == "" {
		cfg.SMTPFromEmail = cfg.SMTPUsername
	}

	if cfg.ContentSource == "s3" && cfg.S3Bucket == "" {
		log.Println("WARNING: CONTENT_SOURCE=s3 but S3_BUCKET is empty. Placeholder content will be shown.")
	}

	if cfg.RateLimitEnabled && cfg.RateLimitStore == "redis" && cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Contact rate limiting will use in-memory store.")
	}

	return cfg, nil
}

// RateLimitWindow returns the configured contact rate limit window
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated environment variable, dropping empty entries
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
