package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Content service
	CMSURL        string
	CMSToken      string
	CMSTimeout    time.Duration
	CMSRevalidate time.Duration

	// Database (optional, enrollments answer 503 without it)
	DatabaseURL string

	// Redis (optional)
	RedisURL string

	// Chat completion
	ChatProvider  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string

	// Operator auth
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	// SMTP
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string
	SalesEmail string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		Env:               getEnvOrDefault("ENV", "development"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		CMSURL:            getEnvOrDefault("CMS_URL", ""),
		CMSToken:          getEnvOrDefault("CMS_API_TOKEN", ""),
		CMSTimeout:        time.Duration(getEnvAsIntOrDefault("CMS_TIMEOUT_SECONDS", 10)) * time.Second,
		CMSRevalidate:     time.Duration(getEnvAsIntOrDefault("CMS_REVALIDATE_SECONDS", 60)) * time.Second,
		DatabaseURL:       getEnvOrDefault("DATABASE_URL", ""),
		RedisURL:          getEnvOrDefault("REDIS_URL", ""),
		ChatProvider:      getEnvOrDefault("CHAT_PROVIDER", "openai"),
		OpenAIAPIKey:      getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:      getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		AdminEmail:        getEnvOrDefault("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		SMTPHost:          getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:          getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:          getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:          getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom:          getEnvOrDefault("SMTP_FROM", "noreply@example.com"),
		SalesEmail:        getEnvOrDefault("SALES_EMAIL", ""),
		FrontendURL:       getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	if cfg.CMSTimeout <= 0 {
		cfg.CMSTimeout = 10 * time.Second
	}
	if cfg.CMSRevalidate < 0 {
		cfg.CMSRevalidate = 0
	}

	return cfg
}

// IsProduction reports whether sample-content notices should be hidden.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
