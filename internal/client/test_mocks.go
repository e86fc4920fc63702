package client

import "book-reader-server/internal/domain"

// Mock logger used by client package tests.
type MockClientLogger struct{}

func NewMockClientLogger() domain.Logger {
	return &MockClientLogger{}
}

func (l *MockClientLogger) Info(msg string, fields ...interface{})             {}
func (l *MockClientLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockClientLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockClientLogger) Warn(msg string, fields ...interface{})             {}
