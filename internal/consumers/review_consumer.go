// Package consumers turns review requests read from Kafka into stored and
// published annotations.
package consumers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/go-playground/validator/v10"
	"github.com/spacesedan/reviewlens/internal/clients/kafka_client"
	kafkautils "github.com/spacesedan/reviewlens/internal/clients/kafka_client/utils"
	"github.com/spacesedan/reviewlens/internal/metrics"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

const (
	outcomeAccepted  = "accepted"
	outcomeMalformed = "malformed"
	outcomeInvalid   = "invalid"
	outcomeDuplicate = "duplicate"
	outcomeFailed    = "failed"
)

type MessageSource interface {
	Next() (*kafka.Message, error)
}

type OffsetCommitter interface {
	CommitBatch(msgs []*kafka.Message) error
}

type BatchAnnotator interface {
	AnnotateBatch(ctx context.Context, reviews []models.ReviewRequest, parallelism int) ([]models.AnnotationResult, error)
}

type AnnotationStore interface {
	StoreAnnotations(ctx context.Context, annotations []models.ReviewAnnotation) error
}

type Publisher interface {
	PublishBatch(ctx context.Context, topic string, records []kafka_client.Record) error
}

type Deduper interface {
	IsReviewAnnotated(ctx context.Context, reviewID string) bool
	MarkAnnotated(ctx context.Context, reviewIDs []string) error
}

type ReviewConsumerConfig struct {
	ResultsTopic    string
	BatchSize       int
	BatchTimeout    time.Duration
	AnnotateTimeout time.Duration
	Parallelism     int
}

// pending is a consumed message. review is nil when the message is only
// waiting for its offset to be committed.
type pending struct {
	msg    *kafka.Message
	review *models.ReviewRequest
}

type ReviewConsumer struct {
	cfg       ReviewConsumerConfig
	annotator BatchAnnotator
	store     AnnotationStore
	publisher Publisher
	deduper   Deduper
	healthy   *atomic.Bool
	validate  *validator.Validate
	buffer    *utils.BatchBuffer[pending]
	now       func() time.Time
	idleDelay time.Duration

	// retrying is set while the buffer holds a batch whose last flush
	// failed. Only the Run goroutine touches it.
	retrying bool
}

func NewReviewConsumer(cfg ReviewConsumerConfig, annotator BatchAnnotator, store AnnotationStore, publisher Publisher) *ReviewConsumer {
	return &ReviewConsumer{
		cfg:       cfg,
		annotator: annotator,
		store:     store,
		publisher: publisher,
		validate:  validator.New(),
		buffer:    utils.NewBatchBuffer[pending](cfg.BatchSize),
		now:       time.Now,
		idleDelay: kafka_client.RETRY_DELAY,
	}
}

// WithDeduper skips reviews the deduper has already seen.
func (rc *ReviewConsumer) WithDeduper(d Deduper) *ReviewConsumer {
	rc.deduper = d
	return rc
}

// WithHealthCheck pauses consumption while healthy is false.
func (rc *ReviewConsumer) WithHealthCheck(healthy *atomic.Bool) *ReviewConsumer {
	rc.healthy = healthy
	return rc
}

// Handler adapts rc to kafka_client.RegisterConsumer.
func (rc *ReviewConsumer) Handler() func(context.Context, *kafka.Consumer) {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
		committer := kafka_client.NewCommitHandler(context.WithoutCancel(ctx), consumer)
		rc.Run(ctx, iterator, committer)
	}
}

// Run reads messages until ctx is done, flushing a batch whenever it fills up
// or BatchTimeout passes. The pending batch is flushed once more on shutdown.
func (rc *ReviewConsumer) Run(ctx context.Context, source MessageSource, committer OffsetCommitter) {
	slog.Info("[ReviewConsumer] Listening for messages...",
		slog.Int("batch_size", rc.cfg.BatchSize),
		slog.Duration("batch_timeout", rc.cfg.BatchTimeout))

	ticker := time.NewTicker(rc.cfg.BatchTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ReviewConsumer] Stopping consumer...")
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rc.cfg.AnnotateTimeout)
			rc.flush(shutdownCtx, committer)
			cancel()
			return
		case <-ticker.C:
			rc.flush(ctx, committer)
		default:
			if rc.retrying {
				rc.wait(ctx)
				if ctx.Err() == nil {
					rc.flush(ctx, committer)
				}
				continue
			}

			if rc.healthy != nil && !rc.healthy.Load() {
				slog.Debug("[ReviewConsumer] Classifier unhealthy, pausing")
				rc.wait(ctx)
				continue
			}

			msg, err := source.Next()
			if err != nil {
				if ctx.Err() == nil {
					kafkautils.HandleConsumerError(err)
					rc.wait(ctx)
				}
				continue
			}
			if msg == nil {
				continue
			}

			if rc.accept(ctx, msg) {
				rc.flush(ctx, committer)
			}
		}
	}
}

func (rc *ReviewConsumer) wait(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(rc.idleDelay):
	}
}

// accept buffers msg and reports whether the batch is full. Messages that
// cannot be annotated are still buffered so their offsets get committed.
func (rc *ReviewConsumer) accept(ctx context.Context, msg *kafka.Message) bool {
	var review models.ReviewRequest
	if err := kafkautils.DeserializeFromJSON(msg.Value, &review); err != nil {
		metrics.ReviewsConsumed.WithLabelValues(outcomeMalformed).Inc()
		return rc.buffer.Add(pending{msg: msg})
	}

	if err := rc.validate.Struct(review); err != nil {
		slog.Warn("[ReviewConsumer] Invalid review request",
			slog.String("error", err.Error()))
		metrics.ReviewsConsumed.WithLabelValues(outcomeInvalid).Inc()
		return rc.buffer.Add(pending{msg: msg})
	}

	if rc.deduper != nil && rc.deduper.IsReviewAnnotated(ctx, review.ReviewID) {
		slog.Debug("[ReviewConsumer] Review already annotated, skipping",
			slog.String("review_id", review.ReviewID))
		metrics.ReviewsConsumed.WithLabelValues(outcomeDuplicate).Inc()
		return rc.buffer.Add(pending{msg: msg})
	}

	metrics.ReviewsConsumed.WithLabelValues(outcomeAccepted).Inc()
	return rc.buffer.Add(pending{msg: msg, review: &review})
}

// flush annotates, stores and publishes the buffered reviews and commits the
// batch. When any of those steps fail the batch goes back into the buffer
// uncommitted and Run stops reading until a later flush gets it through.
func (rc *ReviewConsumer) flush(ctx context.Context, committer OffsetCommitter) {
	if !rc.buffer.HasData() {
		return
	}
	rc.buffer.LogBatchProcessing("reviews")
	batch := rc.buffer.GetAndClear()

	msgs := make([]*kafka.Message, 0, len(batch))
	reviews := make([]models.ReviewRequest, 0, len(batch))
	for _, p := range batch {
		msgs = append(msgs, p.msg)
		if p.review != nil {
			reviews = append(reviews, *p.review)
		}
	}

	if len(reviews) > 0 {
		metrics.BatchSize.Observe(float64(len(reviews)))
		start := time.Now()
		if err := rc.process(ctx, reviews); err != nil {
			slog.Error("[ReviewConsumer] Failed to process batch",
				slog.Int("reviews", len(reviews)),
				slog.String("error", err.Error()))
			metrics.ReviewsConsumed.WithLabelValues(outcomeFailed).Add(float64(len(reviews)))
			rc.buffer.Requeue(batch)
			rc.retrying = true
			return
		}
		slog.Info("[ReviewConsumer] Batch annotated",
			slog.Int("reviews", len(reviews)),
			slog.Duration("elapsed", time.Since(start)))
	}

	rc.retrying = false
	if err := committer.CommitBatch(msgs); err != nil {
		slog.Error("[ReviewConsumer] Failed to commit batch",
			slog.String("error", err.Error()))
	}
}

func (rc *ReviewConsumer) process(ctx context.Context, reviews []models.ReviewRequest) error {
	annotateCtx, cancel := context.WithTimeout(ctx, rc.cfg.AnnotateTimeout)
	results, err := rc.annotator.AnnotateBatch(annotateCtx, reviews, rc.cfg.Parallelism)
	cancel()
	if err != nil {
		return fmt.Errorf("annotate batch: %w", err)
	}

	annotatedAt := rc.now().UTC()
	annotations := make([]models.ReviewAnnotation, 0, len(results))
	records := make([]kafka_client.Record, 0, len(results))
	ids := make([]string, 0, len(results))
	for i, result := range results {
		annotation := models.ReviewAnnotation{
			ReviewID:    reviews[i].ReviewID,
			Annotation:  result,
			AnnotatedAt: annotatedAt,
		}
		annotations = append(annotations, annotation)
		records = append(records, kafka_client.Record{Key: annotation.ReviewID, Value: annotation})
		ids = append(ids, annotation.ReviewID)
	}

	if err := rc.store.StoreAnnotations(ctx, annotations); err != nil {
		return fmt.Errorf("store annotations: %w", err)
	}

	if err := rc.publisher.PublishBatch(ctx, rc.cfg.ResultsTopic, records); err != nil {
		return fmt.Errorf("publish annotations: %w", err)
	}

	if rc.deduper != nil {
		if err := rc.deduper.MarkAnnotated(ctx, ids); err != nil {
			slog.Warn("[ReviewConsumer] Failed to mark reviews annotated",
				slog.String("error", err.Error()))
		}
	}
	return nil
}
