package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one periodic task. Run gets a context bounded by Timeout when set.
type Job struct {
	Name     string
	Every    time.Duration
	Timeout  time.Duration
	RunFirst bool
	Run      func(ctx context.Context) error
}

// Scheduler runs every job on its own ticker. A job never overlaps itself:
// a tick that arrives while the previous run is still going is dropped.
// Failures are logged and the next tick proceeds as usual.
type Scheduler struct {
	logger *slog.Logger
	jobs   []Job
}

func NewScheduler(logger *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{logger: logger, jobs: jobs}
}

func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, job := range s.jobs {
		if job.Every <= 0 || job.Run == nil {
			s.logger.Warn("skipping job without period or body", slog.String("job", job.Name))
			continue
		}
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}

	wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	s.logger.Info("job scheduled", slog.String("job", job.Name), slog.Duration("every", job.Every))

	if job.RunFirst {
		s.runOnce(ctx, job)
	}

	ticker := time.NewTicker(job.Every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("job stopped", slog.String("job", job.Name))
			return
		case <-ticker.C:
			s.runOnce(ctx, job)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	runCtx := ctx
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := job.Run(runCtx); err != nil {
		s.logger.Error("job failed",
			slog.String("job", job.Name),
			slog.Duration("latency", time.Since(start)),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Debug("job finished", slog.String("job", job.Name), slog.Duration("latency", time.Since(start)))
}
