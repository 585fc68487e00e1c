package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/reviewlens/internal/metrics"
)

const HEALTHCHECK_INTERVAL = 15 * time.Second

// HealthChecker is implemented by remote classifiers.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

// MonitorClassifierHealth polls checker every interval and records the result
// in healthy and in the classifier health gauge until ctx is done.
func MonitorClassifierHealth(ctx context.Context, name string, checker HealthChecker, healthy *atomic.Bool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	check := func() {
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		isHealthy := checker.HealthCheck(checkCtx)
		if was := healthy.Swap(isHealthy); was != isHealthy {
			if isHealthy {
				slog.Info("[HealthCheck] Classifier recovered", slog.String("classifier", name))
			} else {
				slog.Warn("[HealthCheck] Classifier is unhealthy", slog.String("classifier", name))
			}
		}
		if isHealthy {
			metrics.ClassifierHealthy.WithLabelValues(name).Set(1)
		} else {
			metrics.ClassifierHealthy.WithLabelValues(name).Set(0)
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
