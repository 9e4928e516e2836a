package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *AppLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// Call once during application startup.
func SetGlobalLogger(l *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger, creating a console logger if none is set
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger = NewAppLogger(Config{Level: "info"})
	}
	return globalLogger
}

func entry(fields []Field) *logrus.Entry {
	return GetGlobalLogger().WithFields(toLogrus(fields))
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	entry(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	entry(fields).Warn(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	entry(fields).Debug(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	entry(fields).Error(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	entry(fields).Fatal(msg)
}
