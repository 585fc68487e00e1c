package kafka_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

type KafkaCommitHandler struct {
	consumer *kafka.Consumer
	ctx      context.Context
}

func NewCommitHandler(ctx context.Context, consumer *kafka.Consumer) *KafkaCommitHandler {
	return &KafkaCommitHandler{
		consumer: consumer,
		ctx:      ctx,
	}
}

// CommitBatch commits the offset after the highest message seen on every
// partition in msgs.
func (ch *KafkaCommitHandler) CommitBatch(msgs []*kafka.Message) error {
	if ch.consumer == nil {
		return errors.New("[KafkaCommitHandler] Kafka consumer has not been initialized")
	}

	offsets := NextOffsets(msgs)
	if len(offsets) == 0 {
		return nil
	}

	for i := 0; i < MAX_RETRIES; i++ {
		select {
		case <-ch.ctx.Done():
			slog.Warn("[KafkaCommitHandler] Context canceled, stopping commit")
			return ch.ctx.Err()
		default:
			_, err := ch.consumer.CommitOffsets(offsets)
			if err == nil {
				slog.Debug("[KafkaCommitHandler] Successfully committed offsets",
					slog.Int("partitions", len(offsets)),
					slog.Int("messages", len(msgs)))
				return nil
			}
			slog.Warn("[KafkaCommitHandler] Failed to commit offsets, retrying...",
				slog.Int("attempt", i+1),
				slog.String("error", err.Error()))

			var kafkaErr kafka.Error
			if errors.As(err, &kafkaErr) && kafkaErr.Code() == kafka.ErrAllBrokersDown {
				slog.Error("[KafkaCommitHandler] All Kafka brokers are down. Aborting commit")
				return err
			}

			time.Sleep(RETRY_DELAY)
		}
	}

	return fmt.Errorf("[KafkaCommitHandler] Failed to commit offsets after %d retries", MAX_RETRIES)
}

// NextOffsets returns, per topic partition, the offset following the last
// message in msgs.
func NextOffsets(msgs []*kafka.Message) []kafka.TopicPartition {
	type key struct {
		topic     string
		partition int32
	}

	latest := make(map[key]kafka.Offset)
	order := make([]key, 0)
	for _, msg := range msgs {
		if msg == nil || msg.TopicPartition.Topic == nil {
			continue
		}
		k := key{*msg.TopicPartition.Topic, msg.TopicPartition.Partition}
		cur, seen := latest[k]
		if !seen {
			order = append(order, k)
		}
		if !seen || msg.TopicPartition.Offset > cur {
			latest[k] = msg.TopicPartition.Offset
		}
	}

	offsets := make([]kafka.TopicPartition, 0, len(order))
	for _, k := range order {
		topic := k.topic
		offsets = append(offsets, kafka.TopicPartition{
			Topic:     &topic,
			Partition: k.partition,
			Offset:    latest[k] + 1,
		})
	}
	return offsets
}
