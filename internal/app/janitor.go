package app

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultSweepInterval = 10 * time.Minute
	maxBackoff           = time.Hour
)

// purger drops expired cache rows. Implemented by *cache.Disk.
type purger interface {
	Purge(ctx context.Context, all bool) (int64, error)
}

// StartJanitor launches a background goroutine that removes expired disk
// cache entries at a fixed cadence, backing off after failures. It returns
// immediately.
func StartJanitor(ctx context.Context, p purger, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	go func() {
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			removed, err := p.Purge(ctx, false)
			switch {
			case err != nil && ctx.Err() != nil:
				return
			case err != nil:
				failures++
				logger.Warn("cache sweep failed", "error", err, "failures", failures)
			default:
				failures = 0
				if removed > 0 {
					logger.Debug("cache sweep", "removed", removed)
				}
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles base for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
