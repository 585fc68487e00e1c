// Package competitors detects mentions of competing brands in a review and
// whether each mention reflects well on the reviewed product.
package competitors

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/utils"
)

const (
	MaxMentions   = 5
	ContextRadius = 100
)

type Detector struct {
	catalog    *catalog.Catalog
	classifier sentiment.Classifier
}

func NewDetector(cat *catalog.Catalog, classifier sentiment.Classifier) *Detector {
	return &Detector{catalog: cat, classifier: classifier}
}

type hit struct {
	name  string
	start int
	end   int
}

// Detect runs two passes. The first looks for competitors near comparison
// keywords, the second picks up remaining competitors mentioned on their own.
func (d *Detector) Detect(ctx context.Context, text string, product models.ProductContext) []models.CompetitorMention {
	names := d.competitorsFor(product)
	mentions := []models.CompetitorMention{}
	if len(names) == 0 || strings.TrimSpace(text) == "" {
		return mentions
	}

	captured := make(map[string]struct{})
	for _, kw := range d.catalog.ComparisonKeywords {
		start, end := utils.FindWord(text, kw.Keyword)
		if start < 0 {
			continue
		}
		snippet := utils.Window(text, start, end, ContextRadius)

		found := occurrences(snippet, names)
		if len(found) == 0 {
			continue
		}

		local := d.localSentiment(ctx, snippet)
		for _, h := range found {
			captured[strings.ToLower(h.name)] = struct{}{}
			mentions = append(mentions, models.CompetitorMention{
				Competitor:     h.name,
				Context:        snippet,
				ComparisonType: kw.Keyword,
				FavorableToUs:  favorable(kw.Polarity, local),
			})
		}
	}

	var remaining []string
	for _, name := range names {
		if _, ok := captured[strings.ToLower(name)]; !ok {
			remaining = append(remaining, name)
		}
	}
	for _, h := range occurrences(text, remaining) {
		snippet := utils.Window(text, h.start, h.end, ContextRadius)
		mentions = append(mentions, models.CompetitorMention{
			Competitor:     h.name,
			Context:        snippet,
			ComparisonType: models.ComparisonDirectMention,
			FavorableToUs:  d.localSentiment(ctx, snippet) != models.LabelPositive,
		})
	}

	if len(mentions) > MaxMentions {
		mentions = mentions[:MaxMentions]
	}
	return mentions
}

func (d *Detector) competitorsFor(product models.ProductContext) []string {
	all := d.catalog.CompetitorsFor(product.Category, product.Subcategory)
	own := strings.ToLower(strings.TrimSpace(product.Brand))
	if own == "" {
		return all
	}

	names := make([]string, 0, len(all))
	for _, name := range all {
		if strings.ToLower(name) != own {
			names = append(names, name)
		}
	}
	return names
}

// occurrences returns the first whole-word occurrence of each name in text,
// ordered by position.
func occurrences(text string, names []string) []hit {
	var hits []hit
	for _, name := range names {
		if start, end := utils.FindWord(text, name); start >= 0 {
			hits = append(hits, hit{name: name, start: start, end: end})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].start < hits[j].start
	})
	return hits
}

// localSentiment falls back to neutral when the classifier fails.
func (d *Detector) localSentiment(ctx context.Context, snippet string) string {
	pred, err := d.classifier.Classify(ctx, snippet)
	if err != nil {
		slog.Warn("[CompetitorDetector] Local sentiment failed, assuming neutral",
			slog.String("error", err.Error()))
		return models.LabelNeutral
	}
	if label := sentiment.NormalizeLabel(pred.Label); label != "" {
		return label
	}
	return models.LabelNeutral
}

// favorable decides whether a comparison reflects well on the reviewed
// product given the keyword's polarity and the sentiment around it.
func favorable(p catalog.Polarity, local string) bool {
	switch p {
	case catalog.PolarityCompetitorBetter:
		return local == models.LabelNegative
	case catalog.PolarityCompetitorWorse:
		return true
	default:
		return local == models.LabelPositive
	}
}
