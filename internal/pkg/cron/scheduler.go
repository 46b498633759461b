package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function run on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs background jobs on fixed intervals. Each job gets its own
// goroutine and fires once immediately on Start, then on every tick.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Run: run})
	slog.Info("scheduled job registered", "job", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.fire(job)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.fire(job)
		}
	}
}

func (s *Scheduler) fire(job Job) {
	start := time.Now()
	if err := job.Run(s.ctx); err != nil {
		slog.Error("scheduled job failed", "job", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("scheduled job finished", "job", job.Name, "duration", time.Since(start))
}
