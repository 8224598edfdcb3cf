package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/piresc/cabbooking/internal/pkg/logger"
	"github.com/piresc/cabbooking/internal/pkg/models"
	nrpkg "github.com/piresc/cabbooking/internal/pkg/newrelic"
	"github.com/piresc/cabbooking/internal/pkg/observability"
	"github.com/piresc/cabbooking/services/trips"
)

// Locker grants the sweep to one replica per tick
type Locker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}

// Sweeper runs the scheduled-trip promoter on a fixed interval
type Sweeper struct {
	tripUC   trips.TripUC
	locker   Locker
	nrApp    *newrelic.Application
	interval time.Duration
	lockTTL  time.Duration
	owner    string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper. A nil locker runs every tick on this replica.
func NewSweeper(tripUC trips.TripUC, locker Locker, nrApp *newrelic.Application, cfg models.TripsConfig) *Sweeper {
	interval := time.Duration(cfg.SweepIntervalSec) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	lockTTL := time.Duration(cfg.SweepLockTTLSec) * time.Second
	if lockTTL <= 0 || lockTTL >= interval {
		lockTTL = interval - interval/10
	}

	hostname, _ := os.Hostname()
	return &Sweeper{
		tripUC:   tripUC,
		locker:   locker,
		nrApp:    nrApp,
		interval: interval,
		lockTTL:  lockTTL,
		owner:    fmt.Sprintf("%s:%s", hostname, uuid.NewString()),
	}
}

// Start launches the ticker loop. Calling Start twice is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx, s.done)

	logger.Info("Scheduled trip sweeper started",
		logger.Duration("interval", s.interval),
		logger.Duration("lock_ttl", s.lockTTL))
}

// Stop cancels the loop and waits for an in-flight sweep or ctx, whichever
// ends first
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		logger.Info("Scheduled trip sweeper stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("sweeper did not stop in time: %w", ctx.Err())
	}
}

func (s *Sweeper) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// RunOnce performs one sweep if this replica wins the lock. It reports
// whether a sweep ran.
func (s *Sweeper) RunOnce(ctx context.Context) bool {
	if !s.acquire(ctx) {
		observability.SweepRunsTotal.WithLabelValues("skipped").Inc()
		return false
	}

	txnCtx, end := nrpkg.StartBackgroundTransaction(ctx, s.nrApp, "TripSweep")
	defer end()

	start := time.Now()
	result, err := s.tripUC.AssignDriversToScheduledTrips(txnCtx)
	if err != nil {
		observability.SweepRunsTotal.WithLabelValues("error").Inc()
		nrpkg.NoticeTransactionError(nrpkg.FromContext(txnCtx), err)
		if !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(txnCtx, "Scheduled trip sweep failed", logger.Err(err))
		}
		return true
	}

	observability.SweepRunsTotal.WithLabelValues("ok").Inc()
	if result.Due > 0 {
		logger.InfoCtx(txnCtx, "Scheduled trip sweep finished",
			logger.Int("due", result.Due),
			logger.Int("promoted", result.Promoted),
			logger.Int("unmatched", result.Unmatched),
			logger.Int("failed", result.Failed),
			logger.Duration("took", time.Since(start)))
	}
	return true
}

// acquire takes the per-tick lock. When Redis is unreachable the sweep runs
// anyway; reservations stay compare-and-set.
func (s *Sweeper) acquire(ctx context.Context) bool {
	if s.locker == nil {
		return true
	}
	ok, err := s.locker.SetNX(ctx, constants.KeyTripSweepLock, s.owner, s.lockTTL)
	if err != nil {
		logger.WarnCtx(ctx, "Sweep lock unavailable, sweeping without it", logger.Err(err))
		return true
	}
	return ok
}
