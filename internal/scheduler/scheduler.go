package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is a unit of background work run on a cron schedule.
type Job interface {
	Run(ctx context.Context) error
	Name() string
}

// Scheduler runs registered jobs in the background.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a scheduler. Schedules use the standard five-field cron syntax
// plus descriptors such as "@hourly" and "@every 30m".
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger.With(slog.String("component", "scheduler")),
	}
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped")
}

// AddJob registers job under schedule.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.RunNow(context.Background(), job); err != nil {
			s.logger.Error("Job failed", slog.String("job", job.Name()), slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", schedule, job.Name(), err)
	}

	s.logger.Info("Job registered", slog.String("job", job.Name()), slog.String("schedule", schedule))
	return nil
}

// RunNow executes job immediately, outside its schedule.
func (s *Scheduler) RunNow(ctx context.Context, job Job) error {
	s.logger.Debug("Running job", slog.String("job", job.Name()))
	if err := job.Run(ctx); err != nil {
		return err
	}
	s.logger.Debug("Job completed", slog.String("job", job.Name()))
	return nil
}
