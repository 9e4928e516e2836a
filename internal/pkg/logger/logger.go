package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/fairpay/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our custom logger that supports multiple outputs
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewAppLogger creates a new application logger writing JSON to stdout
func NewAppLogger(config Config) *AppLogger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logger.SetOutput(os.Stdout)

	return &AppLogger{
		Logger:  logger,
		service: config.Service,
	}
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string, alsoStdout bool) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	if alsoStdout {
		al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		al.Logger.SetOutput(file)
	}
	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// WithRequestContext adds request context fields
func (al *AppLogger) WithRequestContext(requestID, userID, method, path string) *logrus.Entry {
	return al.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"method":     method,
		"path":       path,
	})
}

// WithFields adds custom fields to log entry, always tagging the service
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	if al.service != "" {
		fields["service"] = al.service
	}
	return al.Logger.WithFields(fields)
}

// LogHTTPRequest logs HTTP request with all relevant context
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.WithFields(logrus.Fields{
		"status":     statusCode,
		"latency":    latency.String(),
		"latency_ms": latency.Milliseconds(),
		"client_ip":  clientIP,
		"method":     method,
		"path":       path,
		"user_id":    userID,
		"request_id": requestID,
	})
	if err != nil {
		entry = entry.WithError(err)
	}

	switch {
	case statusCode >= 500:
		entry.Error("Server error")
	case statusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}

// GetFilePath returns the current log file path
func (al *AppLogger) GetFilePath() string {
	return al.filePath
}

// InitAppLoggerFromConfig initializes the logger directly from config models
func InitAppLoggerFromConfig(configs *models.Config) (*AppLogger, error) {
	factory := NewLoggerFactory(Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	})
	return factory.CreateLogger(LoggerType(configs.Logger.Type))
}
