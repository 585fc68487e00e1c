package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ClassifierBackend != BackendVader {
		t.Errorf("ClassifierBackend = %q, want %q", s.ClassifierBackend, BackendVader)
	}
	if s.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", s.BatchSize)
	}
	if s.BatchTimeout != 5*time.Second {
		t.Errorf("BatchTimeout = %v, want 5s", s.BatchTimeout)
	}
	if s.DedupeTTL != 24*time.Hour {
		t.Errorf("DedupeTTL = %v, want 24h", s.DedupeTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BATCH_SIZE", "25")
	t.Setenv("ANNOTATE_TIMEOUT", "3s")
	t.Setenv("KAFKA_REQUEST_TOPIC", "reviews-in")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.BatchSize != 25 {
		t.Errorf("BatchSize = %d, want 25", s.BatchSize)
	}
	if s.AnnotateTimeout != 3*time.Second {
		t.Errorf("AnnotateTimeout = %v, want 3s", s.AnnotateTimeout)
	}
	if s.RequestTopic != "reviews-in" {
		t.Errorf("RequestTopic = %q, want reviews-in", s.RequestTopic)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BATCH_SIZE", "many")
	t.Setenv("BATCH_TIMEOUT", "soon")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.BatchSize != 10 || s.BatchTimeout != 5*time.Second {
		t.Errorf("got (%d, %v), want defaults", s.BatchSize, s.BatchTimeout)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"CLASSIFIER_BACKEND": "bert"}},
		{"remote without url", map[string]string{"CLASSIFIER_BACKEND": BackendRemote}},
		{"zero parallelism", map[string]string{"ANNOTATE_PARALLELISM": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want validation error")
			}
		})
	}
}
