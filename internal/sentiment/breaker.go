package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/spacesedan/reviewlens/internal/metrics"
	"github.com/spacesedan/reviewlens/internal/models"
)

const breakerFailureThreshold = 5

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker[any] {
	metrics.BreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			// the caller giving up is not the classifier's fault
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrEmptyText)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("[CircuitBreaker] State transition",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.BreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func execute[T any](name string, cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	var zero T
	result, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.BreakerRequests.WithLabelValues(name, "rejected").Inc()
			return zero, fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
		}
		metrics.BreakerRequests.WithLabelValues(name, "failure").Inc()
		return zero, err
	}

	metrics.BreakerRequests.WithLabelValues(name, "success").Inc()
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker %s: unexpected result type %T", name, result)
	}
	return typed, nil
}

// Breaker fails fast with ErrUnavailable once the wrapped classifier has
// failed breakerFailureThreshold times in a row.
type Breaker struct {
	name string
	next Classifier
	cb   *gobreaker.CircuitBreaker[any]
}

func NewBreaker(name string, next Classifier) *Breaker {
	return &Breaker{name: name, next: next, cb: newCircuitBreaker(name)}
}

func (b *Breaker) Classify(ctx context.Context, text string) (models.Prediction, error) {
	return execute(b.name, b.cb, func() (models.Prediction, error) {
		return b.next.Classify(ctx, text)
	})
}

// Distribution passes through to the wrapped classifier when it can score
// every label.
func (b *Breaker) Distribution(ctx context.Context, text string) (models.SentimentDistribution, error) {
	dc, ok := b.next.(DistributionClassifier)
	if !ok {
		pred, err := b.Classify(ctx, text)
		if err != nil {
			return models.SentimentDistribution{}, err
		}
		return FromPrediction(pred)
	}
	return execute(b.name, b.cb, func() (models.SentimentDistribution, error) {
		return dc.Distribution(ctx, text)
	})
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

type AspectBreaker struct {
	name string
	next AspectClassifier
	cb   *gobreaker.CircuitBreaker[any]
}

func NewAspectBreaker(name string, next AspectClassifier) *AspectBreaker {
	return &AspectBreaker{name: name, next: next, cb: newCircuitBreaker(name)}
}

func (b *AspectBreaker) ClassifyAspect(ctx context.Context, aspect, sentence string) (models.Prediction, error) {
	return execute(b.name, b.cb, func() (models.Prediction, error) {
		return b.next.ClassifyAspect(ctx, aspect, sentence)
	})
}

func (b *AspectBreaker) State() gobreaker.State {
	return b.cb.State()
}
