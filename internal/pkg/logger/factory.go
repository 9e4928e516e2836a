package logger

import "fmt"

// LoggerType represents different logger configurations
type LoggerType string

const (
	// FileLogger writes logs to file only
	FileLogger LoggerType = "file"
	// ConsoleLogger writes logs to console only
	ConsoleLogger LoggerType = "console"
	// HybridLogger writes logs to both file and console
	HybridLogger LoggerType = "hybrid"
)

// LoggerFactory creates different types of loggers
type LoggerFactory struct {
	defaultConfig Config
}

// NewLoggerFactory creates a new logger factory
func NewLoggerFactory(config Config) *LoggerFactory {
	return &LoggerFactory{defaultConfig: config}
}

// CreateLogger creates a logger based on the specified type
func (f *LoggerFactory) CreateLogger(loggerType LoggerType) (*AppLogger, error) {
	switch loggerType {
	case FileLogger:
		return f.createFileLogger(false)
	case ConsoleLogger:
		return NewAppLogger(f.defaultConfig), nil
	case HybridLogger:
		return f.createFileLogger(true)
	default:
		return NewAppLogger(f.defaultConfig), nil
	}
}

func (f *LoggerFactory) createFileLogger(alsoStdout bool) (*AppLogger, error) {
	l := NewAppLogger(f.defaultConfig)
	if f.defaultConfig.FilePath == "" {
		return l, nil
	}
	if err := l.setupFileOutput(f.defaultConfig.FilePath, alsoStdout); err != nil {
		return nil, fmt.Errorf("failed to setup file output: %w", err)
	}
	return l, nil
}
