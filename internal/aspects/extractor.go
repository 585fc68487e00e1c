// Package aspects finds which product aspects a review talks about and the
// sentiment expressed towards each of them.
package aspects

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/preprocess"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"gonum.org/v1/gonum/stat"
)

const maxExampleSentences = 3

type Extractor struct {
	catalog    *catalog.Catalog
	classifier sentiment.AspectClassifier
}

func NewExtractor(cat *catalog.Catalog, classifier sentiment.AspectClassifier) *Extractor {
	return &Extractor{catalog: cat, classifier: classifier}
}

// Extract returns one record per aspect of the category's vocabulary.
// Aspects no sentence mentions are returned unmentioned.
func (e *Extractor) Extract(ctx context.Context, text, category string) map[string]models.AspectRecord {
	vocab := e.catalog.AspectsFor(category)
	sentences := preprocess.Sentences(text)

	records := make(map[string]models.AspectRecord, len(vocab))
	for aspect, keywords := range vocab {
		records[aspect] = e.extractAspect(ctx, aspect, keywords, sentences)
	}
	return records
}

func (e *Extractor) extractAspect(ctx context.Context, aspect string, keywords, sentences []string) models.AspectRecord {
	hits := matchingSentences(keywords, sentences)
	if len(hits) == 0 {
		return Unmentioned(aspect)
	}

	record := models.AspectRecord{
		Aspect:           aspect,
		Mentioned:        true,
		Sentiment:        models.LabelNeutral,
		ExampleSentences: hits[:min(len(hits), maxExampleSentences)],
	}

	var scores []float64
	best := -1.0
	for _, sentence := range hits {
		pred, err := e.classifier.ClassifyAspect(ctx, aspect, sentence)
		if err != nil {
			slog.Warn("[AspectExtractor] Aspect classification failed, skipping sentence",
				slog.String("aspect", aspect),
				slog.String("error", err.Error()))
			continue
		}
		label := sentiment.NormalizeLabel(pred.Label)
		if label == "" {
			slog.Warn("[AspectExtractor] Unknown label from aspect classifier",
				slog.String("aspect", aspect),
				slog.String("label", pred.Label))
			continue
		}

		scores = append(scores, pred.Score)
		if pred.Score > best {
			best = pred.Score
			record.Sentiment = label
		}
	}

	if len(scores) > 0 {
		record.Confidence = clamp01(stat.Mean(scores, nil))
	}
	return record
}

// Unmentioned is the record for an aspect the review does not talk about.
func Unmentioned(aspect string) models.AspectRecord {
	return models.AspectRecord{
		Aspect:           aspect,
		ExampleSentences: []string{},
	}
}

// Defaults returns an unmentioned record for every aspect of the category.
func Defaults(cat *catalog.Catalog, category string) map[string]models.AspectRecord {
	vocab := cat.AspectsFor(category)
	records := make(map[string]models.AspectRecord, len(vocab))
	for aspect := range vocab {
		records[aspect] = Unmentioned(aspect)
	}
	return records
}

func matchingSentences(keywords, sentences []string) []string {
	var hits []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				hits = append(hits, sentence)
				break
			}
		}
	}
	return hits
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
