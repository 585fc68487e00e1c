package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	maxBatchSize = 25
	maxRetries   = 3
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// AnnotationStore persists review annotations keyed by review_id.
type AnnotationStore struct {
	client  DynamoDBAPI
	table   string
	backoff time.Duration
}

func NewAnnotationStore(client DynamoDBAPI, table string) *AnnotationStore {
	return &AnnotationStore{
		client:  client,
		table:   table,
		backoff: 500 * time.Millisecond,
	}
}

func encodeOptions(o *attributevalue.EncoderOptions) {
	o.TagKey = "json"
}

func decodeOptions(o *attributevalue.DecoderOptions) {
	o.TagKey = "json"
}

// AnnotationItem converts an annotation into a DynamoDB item. Nested fields
// use their JSON names so the stored document matches the Kafka payload.
func AnnotationItem(a models.ReviewAnnotation) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMapWithOptions(a, encodeOptions)
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] failed to marshal annotation %s: %w", a.ReviewID, err)
	}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", a.AnnotatedAt.Unix())}
	return item, nil
}

func (s *AnnotationStore) StoreAnnotations(ctx context.Context, annotations []models.ReviewAnnotation) error {
	for i := 0; i < len(annotations); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := min(i+maxBatchSize, len(annotations))

		writeRequests := make([]types.WriteRequest, 0, end-i)
		for _, a := range annotations[i:end] {
			item, err := AnnotationItem(a)
			if err != nil {
				return err
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		if err := s.writeBatch(ctx, writeRequests); err != nil {
			return err
		}
	}

	slog.Info("[DynamoDB] Successfully stored annotations",
		slog.Int("count", len(annotations)),
		slog.String("table", s.table))
	return nil
}

func (s *AnnotationStore) writeBatch(ctx context.Context, writeRequests []types.WriteRequest) error {
	out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			s.table: writeRequests,
		},
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to batch write annotations: %w", err)
	}

	retryCount := 0
	backoff := s.backoff
	for len(out.UnprocessedItems) > 0 && retryCount < maxRetries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2

		slog.Warn("[DynamoDB] Retrying unprocessed annotations...",
			slog.Int("attempt", retryCount+1),
			slog.Int("remaining", len(out.UnprocessedItems[s.table])))

		out, err = s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: out.UnprocessedItems,
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
		}
		retryCount++
	}

	if remaining := len(out.UnprocessedItems[s.table]); remaining > 0 {
		slog.Error("[DynamoDB] Some annotations were not written even after retries",
			slog.Int("remaining", remaining))
		return fmt.Errorf("[DynamoDB] %d annotations left unprocessed", remaining)
	}
	return nil
}

// GetAnnotation returns the stored annotation for reviewID, or false when
// there is none.
func (s *AnnotationStore) GetAnnotation(ctx context.Context, reviewID string) (models.ReviewAnnotation, bool, error) {
	var annotation models.ReviewAnnotation

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"review_id": &types.AttributeValueMemberS{Value: reviewID},
		},
	})
	if err != nil {
		return annotation, false, fmt.Errorf("[DynamoDB] Failed to get annotation %s: %w", reviewID, err)
	}
	if len(out.Item) == 0 {
		return annotation, false, nil
	}

	if err := attributevalue.UnmarshalMapWithOptions(out.Item, &annotation, decodeOptions); err != nil {
		return annotation, false, fmt.Errorf("[DynamoDB] Unable to unmarshal annotation %s: %w", reviewID, err)
	}
	return annotation, true, nil
}
