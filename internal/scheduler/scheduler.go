package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bouncepro-reminder/config"
	"bouncepro-reminder/internal/domains/reminder/model"
	"bouncepro-reminder/internal/domains/reminder/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type State int

const (
	StateStopped State = iota
	StateRunning
)

var ErrAlreadyRunning = errors.New("scheduler is already running")

// Scheduler owns the reminder loop lifecycle. It is an explicit object, not
// a process-wide timer handle: tests can run several independent instances,
// and Stop consumes exactly the state Start created.
type Scheduler struct {
	svc service.Reminder
	cfg *config.Config

	mu    sync.Mutex
	state State
	cron  *cron.Cron

	lastMu  sync.RWMutex
	lastRun *model.RunStats
}

func New(svc service.Reminder, cfg *config.Config) *Scheduler {
	return &Scheduler{
		svc: svc,
		cfg: cfg,
	}
}

// Start runs the pipeline once synchronously, so a restarted process does
// not wait a full interval for its first pass, then schedules it on the
// configured period. Starting an already-running scheduler is an error.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		return ErrAlreadyRunning
	}

	interval := time.Duration(s.cfg.Reminder.IntervalMinutes) * time.Minute

	s.cron = cron.New()

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), s.runOnce); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	log.Info().
		Dur("interval", interval).
		Msg("Starting booking reminder scheduler")

	s.runOnce()

	s.cron.Start()
	s.state = StateRunning

	return nil
}

// Stop halts scheduling of new runs and waits for an in-flight run to
// complete, so no booking is interrupted between its send and its mark.
// Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return
	}

	log.Info().Msg("Stopping booking reminder scheduler, draining in-flight run")

	<-s.cron.Stop().Done()

	s.state = StateStopped
	s.cron = nil

	log.Info().Msg("Booking reminder scheduler stopped")
}

// State reports the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// LastRun returns the stats of the most recently completed run.
func (s *Scheduler) LastRun() (model.RunStats, bool) {
	s.lastMu.RLock()
	defer s.lastMu.RUnlock()

	if s.lastRun == nil {
		return model.RunStats{}, false
	}

	return *s.lastRun, true
}

// runOnce executes one pass and records its stats. A failed or panicking
// run is logged and swallowed so the next scheduled tick still happens.
func (s *Scheduler) runOnce() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("reminder run panicked")
		}
	}()

	stats, err := s.svc.RunOnce(context.Background())
	if err != nil {
		log.Error().Err(err).Str("runID", stats.RunID).Msg("reminder run failed")
	}

	s.lastMu.Lock()
	s.lastRun = &stats
	s.lastMu.Unlock()
}
