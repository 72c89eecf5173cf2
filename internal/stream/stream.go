// Package stream implements tick-based delivery of metric snapshots.
// A Streamer drives one subscriber: it collects a snapshot immediately,
// then once per interval, and hands each snapshot to a callback. The
// streamer does NOT encode or transport data — the callback owns that.
package stream

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sysglance/sysglance/internal/collector"
	"github.com/sysglance/sysglance/internal/models"
)

// collectTimeout bounds a single collection pass so a stuck probe
// cannot wedge the delivery loop.
const collectTimeout = 5 * time.Second

// Streamer periodically collects snapshots and pushes them to a subscriber.
// Each subscriber gets its own Streamer and its own collection cadence.
type Streamer struct {
	collector *collector.Collector
	interval  time.Duration
	logger    *zap.Logger
}

// New creates a Streamer collecting via c every interval.
// A nil logger disables logging.
func New(c *collector.Collector, interval time.Duration, logger *zap.Logger) *Streamer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Streamer{
		collector: c,
		interval:  interval,
		logger:    logger,
	}
}

// Run pushes snapshots to send until ctx is cancelled or send fails.
// The first snapshot is delivered immediately, the rest on each tick.
// Run returns nil on cancellation and the send error otherwise.
func (s *Streamer) Run(ctx context.Context, send func(models.MetricsSnapshot) error) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := send(s.snapshot(ctx)); err != nil {
		s.logger.Debug("Stream subscriber detached", zap.Error(err))
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := send(s.snapshot(ctx)); err != nil {
				s.logger.Debug("Stream subscriber detached", zap.Error(err))
				return err
			}
		}
	}
}

// snapshot runs one collection pass with a bounded context.
func (s *Streamer) snapshot(ctx context.Context) models.MetricsSnapshot {
	collectCtx, cancel := context.WithTimeout(ctx, collectTimeout)
	defer cancel()
	return s.collector.CollectMetrics(collectCtx)
}
