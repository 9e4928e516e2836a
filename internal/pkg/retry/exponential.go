package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/models"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // Maximum number of retry attempts
	BaseDelay     time.Duration    // Base delay between retries
	MaxDelay      time.Duration    // Maximum delay between retries
	Multiplier    float64          // Exponential backoff multiplier
	Jitter        bool             // Add up to 10% random delay
	RetryableFunc func(error) bool // Function to determine if error is retryable
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries:    3,
		BaseDelay:     100 * time.Millisecond,
		MaxDelay:      30 * time.Second,
		Multiplier:    2.0,
		Jitter:        true,
		RetryableFunc: TransientError,
	}
}

// StartupConfig is used while services wait for their dependencies to come up
func StartupConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxRetries = 8
	cfg.BaseDelay = 500 * time.Millisecond
	cfg.MaxDelay = 10 * time.Second
	cfg.RetryableFunc = func(error) bool { return true }
	return cfg
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	if config.RetryableFunc == nil {
		config.RetryableFunc = TransientError
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 1
	}
	return &Retrier{config: config}
}

// NewWithDefaults creates a new retrier with default configuration
func NewWithDefaults() *Retrier {
	return New(DefaultConfig())
}

// Execute runs fn until it succeeds, returns a non-retryable error, or runs out of attempts
func (r *Retrier) Execute(ctx context.Context, operation string, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("Operation succeeded after retries",
					logger.String("operation", operation),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}

		lastErr = err

		if !r.config.RetryableFunc(err) {
			logger.Debug("Error is not retryable, stopping",
				logger.String("operation", operation),
				logger.Err(err),
				logger.Int("attempt", attempt+1))
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)

		logger.Warn("Operation failed, retrying",
			logger.String("operation", operation),
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Int("max_retries", r.config.MaxRetries))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.Error("Operation failed after all retries",
		logger.String("operation", operation),
		logger.Err(lastErr),
		logger.Int("total_attempts", r.config.MaxRetries+1))

	return fmt.Errorf("%s: retry limit exceeded after %d attempts: %w", operation, r.config.MaxRetries+1, lastErr)
}

// calculateDelay calculates the delay for the given attempt number
func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}

var domainErrors = []error{
	models.ErrNotFound,
	models.ErrInvalidStatus,
	models.ErrInvalidAmount,
	models.ErrInvalidEntryType,
	models.ErrInsufficientBalance,
	models.ErrInvalidFairCode,
	models.ErrMissingField,
	models.ErrUnknownCollection,
	models.ErrAlreadyClaimed,
	models.ErrNotAvailable,
}

var transientMessages = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"temporary failure",
	"service unavailable",
	"no servers available",
	"i/o timeout",
}

// TransientError reports whether err looks like a passing infrastructure failure.
// Ledger rule violations and cancellations are never retried.
func TransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	for _, de := range domainErrors {
		if errors.Is(err, de) {
			return false
		}
	}

	msg := strings.ToLower(err.Error())
	for _, m := range transientMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
