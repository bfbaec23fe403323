package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job represents a scheduled job
type Job struct {
	Name     string
	Interval time.Duration
	// At schedules the job daily at a fixed clock time instead of a
	// fixed interval. Zero value means interval scheduling.
	At time.Time
	Fn func(ctx context.Context) error
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScheduler creates a new cron scheduler
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob adds an interval job to the scheduler
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// AddDailyJob adds a job that fires once a day at the given local clock
// time (hour and minute).
func (s *Scheduler) AddDailyJob(name string, hour, minute int, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	s.jobs = append(s.jobs, Job{
		Name: name,
		At:   at,
		Fn:   fn,
	})
	slog.Info("Cron job registered", "name", name, "daily_at", at.Format("15:04"))
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		if job.At.IsZero() {
			go s.runIntervalJob(job)
		} else {
			go s.runDailyJob(job)
		}
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runIntervalJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	// Run immediately on start
	s.executeJob(job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) runDailyJob(job Job) {
	defer s.wg.Done()

	for {
		next := nextOccurrence(job.At, time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

// nextOccurrence returns the next time the clock reads at's hour:minute
// strictly after now.
func nextOccurrence(at, now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
