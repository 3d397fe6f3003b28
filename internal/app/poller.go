package app

import (
	"context"
	"log/slog"
	"time"
)

// maxBackoff caps the delay between refreshes after repeated failures.
const maxBackoff = 5 * time.Minute

type offersFetcher interface {
	FetchOffers(ctx context.Context) error
}

// StartRefresher launches a background goroutine that refetches the offers
// list every interval. Consecutive failures back off exponentially. A
// non-positive interval disables refreshing. It returns immediately.
func StartRefresher(ctx context.Context, src offersFetcher, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
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

			if err := src.FetchOffers(ctx); err != nil {
				failures++
				logger.Warn("offers refresh failed", "error", err, "failures", failures)
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles base once per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for range failures {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
