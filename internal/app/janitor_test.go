package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 10 * time.Minute

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 10 * time.Minute},
		{"negative failures", -1, 10 * time.Minute},
		{"one failure", 1, 20 * time.Minute},
		{"two failures", 2, 40 * time.Minute},
		{"three failures capped", 3, time.Hour}, // Would be 80m, capped to 1h
		{"many failures capped", 50, time.Hour},
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
		if got > maxBackoff || got <= 0 {
			t.Errorf("calculateBackoff(%d, %v) = %v, outside (0, %v]", failures, baseInterval, got, maxBackoff)
		}
	}
}

type countingPurger struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingPurger) Purge(_ context.Context, all bool) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if all {
		return 0, errors.New("janitor must not purge live entries")
	}
	p.calls++
	return 1, p.err
}

func (p *countingPurger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestStartJanitor_SweepsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &countingPurger{}

	StartJanitor(ctx, p, 5*time.Millisecond, nil)

	deadline := time.Now().Add(2 * time.Second)
	for p.count() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor swept %d times, want at least 2", p.count())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	settled := p.count()
	time.Sleep(50 * time.Millisecond)
	if got := p.count(); got != settled {
		t.Fatalf("janitor kept sweeping after cancel: %d -> %d", settled, got)
	}
}
