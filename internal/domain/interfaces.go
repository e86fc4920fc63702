package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetAPIKey() string
	GetDatabaseURL() string
	GetMaxFileSize() int64
	GetAllowedOrigins() []string

	GetStorageURL() string
	GetStorageKey() string
	GetStorageBucket() string

	GetSpeechURL() string
	GetSpeechKey() string
	GetSpeechUserID() string
	GetSpeechVoice() string
	GetSpeechOutputFormat() string
	GetSpeechTimeout() time.Duration
}
