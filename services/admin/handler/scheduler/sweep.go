package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/fairpay/internal/pkg/logger"
	"github.com/piresc/fairpay/services/admin"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the sweep every fifteen minutes
const DefaultSchedule = "@every 15m"

const sweepTimeout = 5 * time.Minute

// SweepScheduler runs the reconciliation sweep on a cron schedule
type SweepScheduler struct {
	adminUC admin.AdminUC
	cron    *cron.Cron
}

// NewSweepScheduler parses schedule and registers the sweep job.
// Overlapping runs are skipped.
func NewSweepScheduler(adminUC admin.AdminUC, schedule string) (*SweepScheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	s := &SweepScheduler{
		adminUC: adminUC,
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, fmt.Errorf("failed to schedule sweep %q: %w", schedule, err)
	}
	return s, nil
}

// Run performs one sweep
func (s *SweepScheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	report, err := s.adminUC.Sweep(ctx)
	if err != nil {
		logger.Error("Scheduled sweep failed", logger.Err(err))
		return
	}
	if len(report.Drifts) > 0 {
		logger.Warn("Scheduled sweep found balance drift",
			logger.Int("users", len(report.Drifts)))
	}
}

// Start begins running the schedule in the background
func (s *SweepScheduler) Start() {
	s.cron.Start()
	logger.Info("Sweep scheduler started")
}

// Stop halts the schedule and waits for a running sweep to finish or ctx to end
func (s *SweepScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
