package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"book-reader-server/internal/domain"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// AppLogger implements the domain.Logger interface
type AppLogger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a new logger instance
func NewLogger(levelStr string) domain.Logger {
	return &AppLogger{
		level: parseLogLevel(levelStr),
		out:   log.New(os.Stdout, "", 0),
	}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	if l.level <= INFO {
		l.write("INFO", msg, fields)
	}
}

// Error logs an error message together with its cause
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= ERROR {
		l.write("ERROR", msg, append([]interface{}{"error", err}, fields...))
	}
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= DEBUG {
		l.write("DEBUG", msg, fields)
	}
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= WARN {
		l.write("WARN", msg, fields)
	}
}

func (l *AppLogger) write(level, msg string, fields []interface{}) {
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(" [")
	b.WriteString(level)
	b.WriteString("] ")
	b.WriteString(msg)

	// Fields come in key/value pairs; an odd trailing value is dropped.
	for i := 0; i+1 < len(fields); i += 2 {
		b.WriteString(fmt.Sprintf(" %v=%v", fields[i], fields[i+1]))
	}

	l.out.Println(b.String())
}

// parseLogLevel converts string log level to LogLevel enum
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
