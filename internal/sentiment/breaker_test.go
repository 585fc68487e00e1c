package sentiment

import (
	"context"
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/spacesedan/reviewlens/internal/models"
)

type failingClassifier struct {
	calls int
}

func (f *failingClassifier) Classify(context.Context, string) (models.Prediction, error) {
	f.calls++
	return models.Prediction{}, errors.New("connection refused")
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	inner := &failingClassifier{}
	b := NewBreaker("test-breaker-open", inner)

	for i := 0; i < breakerFailureThreshold; i++ {
		if _, err := b.Classify(context.Background(), "text"); err == nil {
			t.Fatal("expected failure")
		}
	}
	if b.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", b.State())
	}

	_, err := b.Classify(context.Background(), "text")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error while open = %v, want ErrUnavailable", err)
	}
	if inner.calls != breakerFailureThreshold {
		t.Errorf("inner called %d times, want %d", inner.calls, breakerFailureThreshold)
	}
}

func TestBreakerDistributionFallsBackToPrediction(t *testing.T) {
	t.Parallel()

	b := NewBreaker("test-breaker-dist", NewVaderClassifier())
	got, err := b.Distribution(context.Background(), "I love it, excellent quality")
	if err != nil {
		t.Fatal(err)
	}
	assertDistribution(t, got)
	if got.Primary != models.LabelPositive {
		t.Errorf("Primary = %s, want positive", got.Primary)
	}
}
