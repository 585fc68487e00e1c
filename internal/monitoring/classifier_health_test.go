package monitoring

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type flakyChecker struct {
	results []bool
	calls   atomic.Int32
}

func (f *flakyChecker) HealthCheck(ctx context.Context) bool {
	n := int(f.calls.Add(1)) - 1
	if n >= len(f.results) {
		return f.results[len(f.results)-1]
	}
	return f.results[n]
}

func TestMonitorClassifierHealth(t *testing.T) {
	t.Parallel()

	checker := &flakyChecker{results: []bool{false, false, true}}
	healthy := &atomic.Bool{}
	healthy.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		MonitorClassifierHealth(ctx, "remote", checker, healthy, time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for checker.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("health checks did not run")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done

	if !healthy.Load() {
		t.Error("healthy = false after recovery, want true")
	}
}

func TestMonitorClassifierHealthInitialCheck(t *testing.T) {
	t.Parallel()

	checker := &flakyChecker{results: []bool{false}}
	healthy := &atomic.Bool{}
	healthy.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	MonitorClassifierHealth(ctx, "remote", checker, healthy, time.Hour)

	if healthy.Load() {
		t.Error("healthy = true, want false after the initial check")
	}
}
