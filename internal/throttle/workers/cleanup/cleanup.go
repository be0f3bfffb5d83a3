package cleanup

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"pacer/internal/throttle/metrics"
)

// Result contains the counts of a single sweep.
type Result struct {
	BackoffDeleted  int           // Expired backoff keys removed
	FailuresDeleted int           // Expired failure records removed
	Duration        time.Duration // Time taken for the sweep
}

type BackoffStore interface {
	DeleteExpired(ctx context.Context, resetWindow time.Duration) (int, error)
	Len(ctx context.Context) (int, error)
}

type FailureStore interface {
	DeleteExpired(ctx context.Context, resetWindow time.Duration) (int, error)
	Len(ctx context.Context) (int, error)
}

type Option func(*Worker)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithInterval(interval time.Duration) Option {
	return func(w *Worker) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) {
		w.metrics = m
	}
}

func WithBackoffWindow(window time.Duration) Option {
	return func(w *Worker) {
		if window > 0 {
			w.backoffWindow = window
		}
	}
}

func WithFailureWindow(window time.Duration) Option {
	return func(w *Worker) {
		if window > 0 {
			w.failureWindow = window
		}
	}
}

// Worker periodically removes backoff and failure records whose reset
// window has already passed. The stores behave correctly without it; the
// sweep only bounds memory for accounts that stop signalling.
type Worker struct {
	backoffs      BackoffStore
	failures      FailureStore
	logger        *slog.Logger
	interval      time.Duration
	backoffWindow time.Duration
	failureWindow time.Duration
	metrics       *metrics.Metrics
}

func New(backoffs BackoffStore, failures FailureStore, opts ...Option) *Worker {
	worker := &Worker{
		backoffs:      backoffs,
		failures:      failures,
		logger:        slog.Default(),
		interval:      time.Minute,
		backoffWindow: 120 * time.Second,
		failureWindow: 120 * time.Second,
		metrics:       nil,
	}
	for _, opt := range opts {
		opt(worker)
	}
	return worker
}

func (w *Worker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			startTime := time.Now()
			res, err := w.RunOnce(ctx)
			duration := time.Since(startTime)

			if err != nil {
				w.logger.Error("throttle_cleanup_failed",
					"error", err,
					"duration_ms", duration.Milliseconds(),
				)
				if w.metrics != nil {
					w.metrics.IncrementCleanupRuns("error")
					w.metrics.ObserveCleanupDuration(duration.Seconds())
				}
				continue
			}

			res.Duration = duration

			w.logger.Info("throttle_cleanup_completed",
				"backoff_keys_deleted", res.BackoffDeleted,
				"failure_records_deleted", res.FailuresDeleted,
				"duration_ms", duration.Milliseconds(),
			)

			if w.metrics != nil {
				w.metrics.IncrementCleanupDeleted("backoff", res.BackoffDeleted)
				w.metrics.IncrementCleanupDeleted("failure", res.FailuresDeleted)
				w.metrics.IncrementCleanupRuns("success")
				w.metrics.ObserveCleanupDuration(duration.Seconds())
			}

		case <-ctx.Done():
			w.logger.Info("throttle cleanup worker stopping", "reason", ctx.Err())
			return ctx.Err()
		}
	}
}

// RunOnce sweeps both stores concurrently and refreshes the tracked-entry
// gauges. Logging is handled by the caller (Start).
func (w *Worker) RunOnce(ctx context.Context) (*Result, error) {
	res := &Result{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		deleted, err := w.backoffs.DeleteExpired(groupCtx, w.backoffWindow)
		if err != nil {
			return err
		}
		res.BackoffDeleted = deleted
		return nil
	})
	group.Go(func() error {
		deleted, err := w.failures.DeleteExpired(groupCtx, w.failureWindow)
		if err != nil {
			return err
		}
		res.FailuresDeleted = deleted
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if w.metrics != nil {
		if count, err := w.backoffs.Len(ctx); err == nil {
			w.metrics.SetTrackedBackoffKeys(count)
		}
		if count, err := w.failures.Len(ctx); err == nil {
			w.metrics.SetTrackedFailureAccounts(count)
		}
	}

	return res, nil
}
