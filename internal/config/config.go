package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"book-reader-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	LogLevel       string
	APIKey         string
	DatabaseURL    string
	MaxFileSize    int64
	AllowedOrigins []string

	StorageURL    string
	StorageKey    string
	StorageBucket string

	SpeechURL          string
	SpeechKey          string
	SpeechUserID       string
	SpeechVoice        string
	SpeechOutputFormat string
	SpeechTimeout      time.Duration
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "5001")),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		APIKey:         getEnvOrDefault("API_KEY", ""),
		DatabaseURL:    getEnvOrDefault("DATABASE_URL", ""),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		StorageURL:    getEnvOrDefault("STORAGE_URL", ""),
		StorageKey:    getEnvOrDefault("STORAGE_SERVICE_KEY", ""),
		StorageBucket: getEnvOrDefault("STORAGE_BUCKET", "pdfs"),

		SpeechURL:          getEnvOrDefault("TTS_URL", ""),
		SpeechKey:          getEnvOrDefault("TTS_API_KEY", ""),
		SpeechUserID:       getEnvOrDefault("TTS_USER_ID", ""),
		SpeechVoice:        getEnvOrDefault("TTS_VOICE", "en-US-standard"),
		SpeechOutputFormat: getEnvOrDefault("TTS_OUTPUT_FORMAT", "mp3"),
		SpeechTimeout:      getEnvDurationOrDefault("TTS_TIMEOUT", 30*time.Second),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAPIKey returns the shared secret every request must present
func (c *AppConfig) GetAPIKey() string {
	return c.APIKey
}

// GetDatabaseURL returns the PostgreSQL connection string
func (c *AppConfig) GetDatabaseURL() string {
	return c.DatabaseURL
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetAllowedOrigins returns the CORS allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetStorageURL returns the object-storage service URL
func (c *AppConfig) GetStorageURL() string {
	return c.StorageURL
}

// GetStorageKey returns the object-storage service key
func (c *AppConfig) GetStorageKey() string {
	return c.StorageKey
}

// GetStorageBucket returns the bucket PDFs are stored in
func (c *AppConfig) GetStorageBucket() string {
	return c.StorageBucket
}

// GetSpeechURL returns the text-to-speech endpoint URL
func (c *AppConfig) GetSpeechURL() string {
	return c.SpeechURL
}

// GetSpeechKey returns the text-to-speech API key
func (c *AppConfig) GetSpeechKey() string {
	return c.SpeechKey
}

// GetSpeechUserID returns the text-to-speech account user id
func (c *AppConfig) GetSpeechUserID() string {
	return c.SpeechUserID
}

// GetSpeechVoice returns the synthesis voice
func (c *AppConfig) GetSpeechVoice() string {
	return c.SpeechVoice
}

// GetSpeechOutputFormat returns the synthesis output format
func (c *AppConfig) GetSpeechOutputFormat() string {
	return c.SpeechOutputFormat
}

// GetSpeechTimeout returns the bound on waiting for the synthesis response
func (c *AppConfig) GetSpeechTimeout() time.Duration {
	return c.SpeechTimeout
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
