package signals

import (
	"context"
	"sort"
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/preprocess"
)

const maxKeywords = 10

// FrequencyKeywordExtractor ranks the unigrams and bigrams of the
// normalized tokens by frequency. Bigrams get a small bonus over the
// single words they are made of.
type FrequencyKeywordExtractor struct{}

func NewFrequencyKeywordExtractor() *FrequencyKeywordExtractor {
	return &FrequencyKeywordExtractor{}
}

func (f *FrequencyKeywordExtractor) Keywords(ctx context.Context, text string) ([]models.Keyword, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := preprocess.Tokenize(preprocess.Clean(text))
	keywords := []models.Keyword{}
	if len(tokens) == 0 {
		return keywords, nil
	}

	counts := make(map[string]int)
	sizes := make(map[string]int)
	for i, tok := range tokens {
		counts[tok]++
		sizes[tok] = 1
		if i+1 < len(tokens) && tokens[i+1] != tok {
			bigram := tok + " " + tokens[i+1]
			counts[bigram]++
			sizes[bigram] = 2
		}
	}

	best := 0.0
	for phrase, n := range counts {
		keywords = append(keywords, models.Keyword{
			Keyword:   phrase,
			Score:     weight(n, sizes[phrase]),
			WordCount: sizes[phrase],
		})
		best = max(best, weight(n, sizes[phrase]))
	}
	for i := range keywords {
		keywords[i].Score /= best
	}

	sort.Slice(keywords, func(i, j int) bool {
		a, b := keywords[i], keywords[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.WordCount != b.WordCount {
			return a.WordCount > b.WordCount
		}
		return strings.Compare(a.Keyword, b.Keyword) < 0
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords, nil
}

func weight(count, size int) float64 {
	return float64(count) * (1 + 0.5*float64(size-1))
}
