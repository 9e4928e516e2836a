package health

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/piresc/fairpay/internal/pkg/database"
	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a plain function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// NewPostgresHealthChecker pings the ledger database
func NewPostgresHealthChecker(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil || client.GetDB() == nil {
			return nil
		}
		return client.GetDB().PingContext(ctx)
	})
}

// NewRedisHealthChecker pings the local ledger cache
func NewRedisHealthChecker(client *database.RedisClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		return client.GetClient().Ping(ctx).Err()
	})
}

// NewNATSHealthChecker reports whether the change feed connection is up
func NewNATSHealthChecker(client *nats.Client) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return nil
		}
		if !client.IsConnected() {
			return errors.New("NATS not connected")
		}
		return nil
	})
}

// Pinger is anything with a liveness probe, such as an NSQ producer
type Pinger interface {
	Ping() error
}

// NewNSQHealthChecker pings the ledger event producer
func NewNSQHealthChecker(p Pinger) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if p == nil {
			return nil
		}
		return p.Ping()
	})
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	for _, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			response.Status = "unhealthy"
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}

	return response
}
