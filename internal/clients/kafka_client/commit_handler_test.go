package kafka_client

import (
	"testing"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

func message(topic string, partition int32, offset kafka.Offset) *kafka.Message {
	return &kafka.Message{TopicPartition: kafka.TopicPartition{
		Topic:     &topic,
		Partition: partition,
		Offset:    offset,
	}}
}

func TestNextOffsets(t *testing.T) {
	t.Parallel()

	msgs := []*kafka.Message{
		message("reviews", 0, 10),
		message("reviews", 1, 4),
		message("reviews", 0, 12),
		message("reviews", 0, 11),
		nil,
		message("reviews", 1, 3),
	}

	got := NextOffsets(msgs)
	if len(got) != 2 {
		t.Fatalf("len(NextOffsets) = %d, want 2", len(got))
	}

	want := map[int32]kafka.Offset{0: 13, 1: 5}
	for _, tp := range got {
		if *tp.Topic != "reviews" {
			t.Errorf("topic = %q, want reviews", *tp.Topic)
		}
		if tp.Offset != want[tp.Partition] {
			t.Errorf("partition %d offset = %d, want %d", tp.Partition, tp.Offset, want[tp.Partition])
		}
	}
}

func TestNextOffsetsEmpty(t *testing.T) {
	t.Parallel()

	if got := NextOffsets(nil); len(got) != 0 {
		t.Errorf("NextOffsets(nil) = %v, want empty", got)
	}
}
