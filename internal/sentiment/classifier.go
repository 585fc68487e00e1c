// Package sentiment holds the pluggable sentiment classifiers and the fusion
// of a text distribution with the emoji signal.
package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
)

var (
	ErrUnavailable = errors.New("sentiment: classifier unavailable")
	ErrEmptyText   = errors.New("sentiment: empty text")
)

// Classifier labels a piece of text as positive, neutral or negative.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.Prediction, error)
}

// DistributionClassifier is implemented by classifiers that can score every
// label instead of only the winning one.
type DistributionClassifier interface {
	Classifier
	Distribution(ctx context.Context, text string) (models.SentimentDistribution, error)
}

// AspectClassifier scores the sentiment a sentence expresses about one aspect.
type AspectClassifier interface {
	ClassifyAspect(ctx context.Context, aspect, sentence string) (models.Prediction, error)
}

// TextDistribution asks c for a full distribution when it can give one and
// otherwise spreads its single prediction with FromPrediction.
func TextDistribution(ctx context.Context, c Classifier, text string) (models.SentimentDistribution, error) {
	if strings.TrimSpace(text) == "" {
		return Prior(), nil
	}

	if dc, ok := c.(DistributionClassifier); ok {
		dist, err := dc.Distribution(ctx, text)
		if err != nil {
			return models.SentimentDistribution{}, err
		}
		return normalize(dist.Positive, dist.Neutral, dist.Negative), nil
	}

	pred, err := c.Classify(ctx, text)
	if err != nil {
		return models.SentimentDistribution{}, err
	}
	return FromPrediction(pred)
}

// FromPrediction gives the predicted label its score and splits the rest
// evenly between the other two labels.
func FromPrediction(p models.Prediction) (models.SentimentDistribution, error) {
	label := NormalizeLabel(p.Label)
	if label == "" {
		return models.SentimentDistribution{}, fmt.Errorf("unknown sentiment label %q", p.Label)
	}

	score := clamp01(p.Score)
	rest := (1 - score) / 2
	pos, neu, neg := rest, rest, rest
	switch label {
	case models.LabelPositive:
		pos = score
	case models.LabelNeutral:
		neu = score
	case models.LabelNegative:
		neg = score
	}
	return normalize(pos, neu, neg), nil
}

// FromScores folds the per-label scores of a model into a distribution. A
// single score is treated like FromPrediction and unknown labels are skipped.
func FromScores(scores []models.Prediction) (models.SentimentDistribution, error) {
	switch len(scores) {
	case 0:
		return models.SentimentDistribution{}, fmt.Errorf("%w: no scores", ErrUnavailable)
	case 1:
		return FromPrediction(scores[0])
	}

	var pos, neu, neg float64
	for _, s := range scores {
		switch NormalizeLabel(s.Label) {
		case models.LabelPositive:
			pos += s.Score
		case models.LabelNeutral:
			neu += s.Score
		case models.LabelNegative:
			neg += s.Score
		}
	}
	return normalize(pos, neu, neg), nil
}

// NormalizeLabel maps the label spellings used by common models onto the
// three canonical labels. It returns "" for anything it does not recognise.
func NormalizeLabel(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive", "pos", "label_2", "5 stars", "4 stars":
		return models.LabelPositive
	case "neutral", "neu", "label_1", "3 stars":
		return models.LabelNeutral
	case "negative", "neg", "label_0", "1 star", "2 stars":
		return models.LabelNegative
	}
	return ""
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
