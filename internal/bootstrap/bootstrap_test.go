package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/models"
)

func TestNewPipelineVader(t *testing.T) {
	t.Parallel()

	p, err := NewPipeline(&config.Settings{ClassifierBackend: config.BackendVader}, catalog.Default())
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	defer p.Close()

	if p.Health != nil {
		t.Error("Health set for a local classifier")
	}

	got := p.Annotator.Annotate(context.Background(), "I love this phone, the battery is amazing!", models.ProductContext{Category: "electronics"})
	if got.Sentiment.Primary != "positive" {
		t.Errorf("Primary = %q, want positive", got.Sentiment.Primary)
	}
}

func TestNewPipelineRemote(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ClassificationResponse{Label: "NEGATIVE", Score: 0.9})
	}))
	defer srv.Close()

	p, err := NewPipeline(&config.Settings{
		ClassifierBackend: config.BackendRemote,
		ClassifierURL:     srv.URL,
		AnnotateTimeout:   time.Second,
	}, catalog.Default())
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	defer p.Close()

	if p.Health == nil || p.HealthName != "remote" {
		t.Fatalf("Health = %v (%q), want remote checker", p.Health, p.HealthName)
	}
	if !p.Health.HealthCheck(context.Background()) {
		t.Error("HealthCheck() = false, want true")
	}

	got := p.Annotator.Annotate(context.Background(), "It arrived on Tuesday.", models.ProductContext{})
	if got.Sentiment.Primary != "negative" {
		t.Errorf("Primary = %q, want negative from the remote classifier", got.Sentiment.Primary)
	}
}
