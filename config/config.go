package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AI provider identifiers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// AI text provider configuration
	AIProvider    string        // "openai" or "gemini"
	AIAPIKey      string
	AIAPIURL      string        // chat-completions endpoint for the openai provider
	AIModel       string
	AITimeout     time.Duration // per outbound call
	UseBackupData bool          // serve the fixed fallback plan when generation fails

	// Image generation configuration
	GeminiAPIKey     string
	GeminiImageModel string
	ImageDir         string // local directory for generated images
	ImageBaseURL     string // public prefix for locally stored images
	SecureURLs       bool   // upgrade http: image URLs to https:
}

// LoadConfig creates a new Config instance from environment variables.
// Call godotenv.Load first if a .env file should be honored.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "momnutri"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AIProvider:    getEnv("AI_PROVIDER", ProviderOpenAI),
		AIAPIKey:      os.Getenv("AI_API_KEY"),
		AIAPIURL:      getEnv("AI_API_URL", "https://api.deepseek.com/v1/chat/completions"),
		AIModel:       getEnv("AI_MODEL", "deepseek-chat"),
		AITimeout:     getEnvDuration("AI_TIMEOUT", 20*time.Second),
		UseBackupData: getEnvBool("USE_BACKUP_DATA", false),

		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation"),
		ImageDir:         getEnv("IMAGE_DIR", "./public/images"),
		ImageBaseURL:     getEnv("IMAGE_BASE_URL", "/images"),
		SecureURLs:       getEnvBool("SECURE_URLS", IsProduction()),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AIProvider != ProviderOpenAI && cfg.AIProvider != ProviderGemini {
		return fmt.Errorf("AI_PROVIDER must be %q or %q, got %q",
			ProviderOpenAI, ProviderGemini, cfg.AIProvider)
	}
	return nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisAddr returns host:port for the Redis client.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
