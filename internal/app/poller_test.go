package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/sixcities/internal/logging"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures", 2, 2 * time.Minute},
		{"three failures", 3, 4 * time.Minute},
		{"four failures capped", 4, 5 * time.Minute}, // 8m before the cap
		{"many failures capped", 40, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type countingFetcher struct {
	calls atomic.Int32
	err   error
}

func (f *countingFetcher) FetchOffers(context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestStartRefresher_FetchesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetcher := &countingFetcher{}

	StartRefresher(ctx, fetcher, 5*time.Millisecond, logging.Discard())

	deadline := time.Now().Add(2 * time.Second)
	for fetcher.calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("refresher made %d calls, want at least 3", fetcher.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	time.Sleep(20 * time.Millisecond)
	settled := fetcher.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := fetcher.calls.Load(); got > settled+1 {
		t.Fatalf("refresher kept running after cancel: %d -> %d calls", settled, got)
	}
}

func TestStartRefresher_DisabledForZeroInterval(t *testing.T) {
	fetcher := &countingFetcher{err: errors.New("boom")}
	StartRefresher(context.Background(), fetcher, 0, logging.Discard())

	time.Sleep(20 * time.Millisecond)
	if got := fetcher.calls.Load(); got != 0 {
		t.Fatalf("refresher called FetchOffers %d times, want 0", got)
	}
}
