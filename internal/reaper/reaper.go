// Package reaper deletes expired uploads and their blobs on a fixed
// interval. It is best-effort: per-item failures are logged and the
// loop moves on, so the background job itself never halts the process.
package reaper

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/upload"
)

type Reaper struct {
	uploads  upload.Repository
	store    ports.ObjectStore
	logger   *zap.Logger
	interval time.Duration
	mCounter *prometheus.CounterVec

	// running guards against re-entering a run that overran the
	// interval; an overdue tick is skipped, not queued.
	running sync.Mutex
}

func New(
	uploads upload.Repository,
	store ports.ObjectStore,
	logger *zap.Logger,
	interval time.Duration,
	mCounter *prometheus.CounterVec,
) *Reaper {
	return &Reaper{
		uploads:  uploads,
		store:    store,
		logger:   logger,
		interval: interval,
		mCounter: mCounter,
	}
}

// Run blocks until ctx is cancelled, reaping once per interval.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reaper started", zap.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reaper stopped")
			return
		case <-ticker.C:
			if !r.running.TryLock() {
				r.logger.Warn("previous reaper run still in progress, skipping tick")
				continue
			}
			r.ReapOnce(ctx)
			r.running.Unlock()
		}
	}
}

// ReapOnce performs a single cleanup pass and returns the number of
// expired records found.
func (r *Reaper) ReapOnce(ctx context.Context) int {
	r.logger.Info("starting cleanup of expired uploads")

	expired, err := r.uploads.FetchExpired(ctx, time.Now().UTC())
	if err != nil {
		r.logger.Error("fetching expired uploads failed", zap.Error(err))
		return 0
	}
	if len(expired) == 0 {
		r.logger.Info("no expired uploads to clean up")
		return 0
	}

	r.logger.Info("found expired uploads to delete", zap.Int("count", len(expired)))

	for _, rec := range expired {
		if err := r.store.Delete(ctx, rec.ObjectKey); err != nil {
			r.logger.Error("deleting blob failed",
				zap.String("short_id", rec.ShortID), zap.Error(err))
			continue
		}
		if err := r.uploads.DeleteByShortID(ctx, rec.ShortID); err != nil {
			r.logger.Error("deleting upload record failed",
				zap.String("short_id", rec.ShortID), zap.Error(err))
			continue
		}
		if r.mCounter != nil {
			r.mCounter.WithLabelValues("uploads_reaped_total").Inc()
		}
		r.logger.Info("deleted expired upload", zap.String("short_id", rec.ShortID))
	}

	r.logger.Info("cleanup finished")

	return len(expired)
}
