package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/logger"
)

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, addr string, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanup functions in reverse registration order
type ShutdownManager struct {
	mu        sync.Mutex
	functions []namedCleanup
}

type namedCleanup struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.functions = append(sm.functions, namedCleanup{name: name, fn: fn})
}

// Shutdown executes all registered cleanup functions, newest first.
// Failures are logged and joined; every function still runs.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	functions := append([]namedCleanup(nil), sm.functions...)
	sm.mu.Unlock()

	logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	var errs []error
	for i := len(functions) - 1; i >= 0; i-- {
		c := functions[i]
		if err := c.fn(ctx); err != nil {
			logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}

	logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
