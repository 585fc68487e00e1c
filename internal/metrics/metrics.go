package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Annotation
	AnnotationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviewlens_annotations_total",
			Help: "Total number of annotated reviews",
		},
	)

	AnnotationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reviewlens_annotation_duration_seconds",
			Help:    "Time spent annotating a single review",
			Buckets: prometheus.DefBuckets,
		},
	)

	StageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_stage_failures_total",
			Help: "Annotation stages that failed and were replaced by their default",
		},
		[]string{"stage"},
	)

	// Classifiers
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reviewlens_classifier_breaker_state",
			Help: "Circuit breaker state per classifier (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	BreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_classifier_breaker_requests_total",
			Help: "Classifier calls through the circuit breaker by result",
		},
		[]string{"name", "result"},
	)

	ClassifierHealthy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reviewlens_classifier_healthy",
			Help: "Result of the last classifier health check (1=healthy)",
		},
		[]string{"name"},
	)

	// Consumer
	ReviewsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_reviews_consumed_total",
			Help: "Review requests read from Kafka by outcome",
		},
		[]string{"outcome"},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reviewlens_consumer_batch_size",
			Help:    "Number of review requests per flushed batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)
)
