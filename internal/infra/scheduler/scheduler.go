// Package scheduler runs the periodic maintenance jobs: the midnight engine
// rollover, the email outbox purge and the rate limiter cleanup.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a named periodic task.
type Job struct {
	Name string
	// Spec is a standard five-field cron expression or a descriptor like @every 5m.
	Spec string
	Run  func(ctx context.Context)
}

// JobObserver is told about every job run. Implemented by the metrics layer.
type JobObserver interface {
	JobRan(job string)
}

// Scheduler wraps a cron runner whose schedules are evaluated in a fixed location.
type Scheduler struct {
	cron     *cron.Cron
	observer JobObserver

	mu   sync.Mutex
	jobs map[string]Job
	ctx  context.Context
}

// New creates a scheduler evaluating schedules in loc. The observer may be nil.
func New(loc *time.Location, observer JobObserver) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	logger := slogLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		observer: observer,
		jobs:     make(map[string]Job),
		ctx:      context.Background(),
	}
}

// Register adds a job. Empty specs disable the job.
func (s *Scheduler) Register(job Job) error {
	if job.Spec == "" {
		slog.Info("Scheduled job disabled", "job", job.Name)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.Name]; exists {
		return fmt.Errorf("job %q already registered", job.Name)
	}
	if _, err := s.cron.AddFunc(job.Spec, func() { s.run(job) }); err != nil {
		return fmt.Errorf("invalid schedule %q for job %q: %w", job.Spec, job.Name, err)
	}
	s.jobs[job.Name] = job
	return nil
}

// Trigger runs a registered job immediately. It reports false for unknown jobs.
func (s *Scheduler) Trigger(name string) bool {
	s.mu.Lock()
	job, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.run(job)
	return true
}

// Start runs the scheduler until ctx is cancelled, then waits for running jobs.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	count := len(s.jobs)
	s.mu.Unlock()

	s.cron.Start()
	slog.Info("Scheduler started", "jobs", count)

	<-ctx.Done()
	<-s.cron.Stop().Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(job Job) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	start := time.Now()
	job.Run(ctx)
	slog.Debug("Scheduled job finished", "job", job.Name, "elapsed", time.Since(start))

	if s.observer != nil {
		s.observer.JobRan(job.Name)
	}
}

// slogLogger adapts slog to cron.Logger.
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("Cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("Cron: "+msg, append(keysAndValues, "error", err)...)
}
