package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/fairpay/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed lets calls through
	StateClosed State = iota
	// StateOpen refuses calls until the cooldown ends
	StateOpen
	// StateHalfOpen lets a single probe through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpen is returned without calling through while the breaker is open
var ErrOpen = errors.New("circuit breaker is open")

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	FailureThreshold int           // consecutive failures that open the breaker
	Cooldown         time.Duration // time spent open before a probe is allowed
}

// DefaultConfig returns the settings used for the ledger event publisher
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 3,
		Cooldown:         30 * time.Second,
	}
}

// CircuitBreaker stops calling a dependency after repeated failures
type CircuitBreaker struct {
	config Config
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// New creates a closed circuit breaker
func New(config Config) *CircuitBreaker {
	return NewWithClock(config, time.Now)
}

// NewWithClock creates a closed circuit breaker reading time from now
func NewWithClock(config Config, now func() time.Time) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	return &CircuitBreaker{config: config, now: now}
}

// Execute calls fn unless the breaker is open. Context errors do not count
// as failures of the dependency.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.after(err)
	return err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.config.Cooldown {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			return ErrOpen
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		cb.failures = 0
		if cb.state != StateClosed {
			cb.setState(StateClosed)
		}
		return
	}

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
		cb.openedAt = cb.now()
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	logger.Warn("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", cb.state.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", cb.failures))
	cb.state = state
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
