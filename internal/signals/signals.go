// Package signals holds the pass-through producers whose output is attached
// to an annotation as is: entities, emotions, keywords and topics.
package signals

import (
	"context"

	"github.com/spacesedan/reviewlens/internal/models"
)

type EntityExtractor interface {
	Entities(ctx context.Context, text string) (models.Entities, error)
}

// EmotionClassifier returns a score per emotion label for emoji-free text.
type EmotionClassifier interface {
	Emotions(ctx context.Context, text string) (map[string]float64, error)
}

type KeywordExtractor interface {
	Keywords(ctx context.Context, text string) ([]models.Keyword, error)
}

type TopicProducer interface {
	Topics(ctx context.Context, text string, product models.ProductContext) ([]models.Topic, error)
}

// EmptyEntities is the value used when no entity extractor is available.
func EmptyEntities() models.Entities {
	return models.Entities{
		Brands:        []string{},
		Locations:     []string{},
		Persons:       []string{},
		Miscellaneous: []string{},
	}
}

// NeutralEmotions is the value used for empty text or when emotion
// detection fails.
func NeutralEmotions() models.Emotions {
	return models.Emotions{
		PrimaryEmotion: EmotionNeutral,
		EmotionScores:  map[string]float64{EmotionNeutral: 1},
	}
}
