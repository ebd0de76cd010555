// Package refresh drives the periodic re-fetch of the Locality
// dataset (spec §5: "Unloaded→Loaded ... periodic refresh re-runs the
// fetch/build pipeline and swaps the registry's backing store once
// the new build succeeds").
package refresh

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Rebuilder performs one fetch-and-rebuild pass, swapping the
// registry's backing store on success. It is supplied by the caller
// (typically a closure over a registry.LocalityRegistry and a
// dataset/fetch.Source) so this package stays ignorant of both.
type Rebuilder func(ctx context.Context) error

// Scheduler runs a Rebuilder on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	mu     sync.Mutex
	entry  cron.EntryID
	active bool
}

// NewScheduler builds a Scheduler that has not yet been started.
func NewScheduler(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{cron: cron.New(cron.WithSeconds()), logger: logger}
}

// Start registers rebuild on the given cron schedule and starts the
// scheduler. schedule uses six-field cron syntax with a leading
// seconds field (the scheduler is built with cron.WithSeconds).
func (s *Scheduler) Start(ctx context.Context, schedule string, rebuild Rebuilder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.logger.Info("locality dataset refresh starting")
		if err := rebuild(ctx); err != nil {
			s.logger.Error("locality dataset refresh failed", "error", err)
			return
		}
		s.logger.Info("locality dataset refresh complete")
	})
	if err != nil {
		return err
	}
	s.entry = entryID
	s.cron.Start()
	s.active = true
	return nil
}

// Stop halts the scheduler, waiting for any in-flight rebuild to
// finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	<-s.cron.Stop().Done()
	s.active = false
}
