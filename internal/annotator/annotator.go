// Package annotator runs every annotation stage over a review and merges
// their output into a single AnnotationResult.
package annotator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/reviewlens/internal/aspects"
	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/competitors"
	"github.com/spacesedan/reviewlens/internal/emoji"
	"github.com/spacesedan/reviewlens/internal/metrics"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/preprocess"
	"github.com/spacesedan/reviewlens/internal/quality"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/signals"
	"golang.org/x/sync/errgroup"
)

// emojiContextWindow is how many runes of text are kept on each side of an
// emoji in EmojiContexts.
const emojiContextWindow = 10

var annotationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/spacesedan/reviewlens/annotation"))

type Annotator struct {
	catalog          *catalog.Catalog
	lexicon          *emoji.Lexicon
	normalizer       *preprocess.Normalizer
	classifier       sentiment.Classifier
	aspectClassifier sentiment.AspectClassifier
	aspects          *aspects.Extractor
	competitors      *competitors.Detector
	entities         signals.EntityExtractor
	emotions         signals.EmotionClassifier
	keywords         signals.KeywordExtractor
	topics           signals.TopicProducer
}

type Option func(*Annotator)

// WithClassifier replaces the primary sentiment classifier used for the
// review and for the text around competitor mentions.
func WithClassifier(c sentiment.Classifier) Option {
	return func(a *Annotator) { a.classifier = c }
}

func WithAspectClassifier(c sentiment.AspectClassifier) Option {
	return func(a *Annotator) { a.aspectClassifier = c }
}

func WithLexicon(l *emoji.Lexicon) Option {
	return func(a *Annotator) { a.lexicon = l }
}

func WithEntityExtractor(e signals.EntityExtractor) Option {
	return func(a *Annotator) { a.entities = e }
}

func WithEmotionClassifier(e signals.EmotionClassifier) Option {
	return func(a *Annotator) { a.emotions = e }
}

func WithKeywordExtractor(k signals.KeywordExtractor) Option {
	return func(a *Annotator) { a.keywords = k }
}

// WithTopicProducer enables topic extraction. Without one, topics are
// always empty.
func WithTopicProducer(t signals.TopicProducer) Option {
	return func(a *Annotator) { a.topics = t }
}

// New builds an annotator over cat. Every collaborator not set by an option
// falls back to an offline implementation.
func New(cat *catalog.Catalog, opts ...Option) *Annotator {
	if cat == nil {
		cat = catalog.Default()
	}
	a := &Annotator{catalog: cat}
	for _, opt := range opts {
		opt(a)
	}

	if a.lexicon == nil {
		a.lexicon = emoji.DefaultLexicon()
	}
	if a.classifier == nil {
		a.classifier = sentiment.NewVaderClassifier()
	}
	if a.aspectClassifier == nil {
		a.aspectClassifier = sentiment.NewVaderAspectClassifier(cat.AspectKeywords())
	}
	if a.entities == nil {
		a.entities = signals.NewProseEntityExtractor(cat.Brands())
	}
	if a.emotions == nil {
		a.emotions = signals.NewLexiconEmotionClassifier()
	}
	if a.keywords == nil {
		a.keywords = signals.NewFrequencyKeywordExtractor()
	}

	a.normalizer = preprocess.NewNormalizer(a.lexicon)
	a.aspects = aspects.NewExtractor(cat, a.aspectClassifier)
	a.competitors = competitors.NewDetector(cat, a.classifier)
	return a
}

// AnnotationID is derived from the review text and product so the same
// review always gets the same ID.
func AnnotationID(text string, product models.ProductContext) string {
	key := strings.Join([]string{
		text, product.ProductID, product.ProductName, product.Brand, product.Category, product.Subcategory,
	}, "\x1f")
	return uuid.NewSHA1(annotationNamespace, []byte(key)).String()
}

// Annotate never fails. A stage that errors or panics is replaced by its
// default and listed in DegradedStages.
func (a *Annotator) Annotate(ctx context.Context, text string, product models.ProductContext) models.AnnotationResult {
	start := time.Now()
	defer func() {
		metrics.AnnotationsTotal.Inc()
		metrics.AnnotationDuration.Observe(time.Since(start).Seconds())
	}()

	if strings.TrimSpace(text) == "" {
		return neutralResult(text, product)
	}

	var d degraded

	sig := runStage(ctx, &d, StageEmoji,
		func() models.EmojiSignal { return models.EmojiSignal{} },
		func(context.Context) (models.EmojiSignal, error) {
			return a.lexicon.Analyze(text), nil
		})

	contexts := runStage(ctx, &d, StageEmoji,
		func() []models.EmojiContext { return []models.EmojiContext{} },
		func(context.Context) ([]models.EmojiContext, error) {
			return a.lexicon.Contexts(text, emojiContextWindow), nil
		})

	norm := runStage(ctx, &d, StageNormalize,
		func() preprocess.Normalized {
			return preprocess.Normalized{Cleaned: strings.ToLower(strings.Join(strings.Fields(text), " ")), EmojiReplaced: text}
		},
		func(context.Context) (preprocess.Normalized, error) {
			return a.normalizer.Normalize(text), nil
		})

	plain := preprocess.ConvertMarkdownToText(emoji.Remove(text))

	dist := runStage(ctx, &d, StageSentiment,
		func() models.SentimentDistribution { return sentiment.Fuse(sentiment.Prior(), sig) },
		func(ctx context.Context) (models.SentimentDistribution, error) {
			textDist, err := sentiment.TextDistribution(ctx, a.classifier, plain)
			if err != nil {
				return models.SentimentDistribution{}, err
			}
			textDist.Subjectivity = sentiment.Subjectivity(plain)
			return sentiment.Fuse(textDist, sig), nil
		})

	aspectRecords := runStage(ctx, &d, StageAspects,
		func() map[string]models.AspectRecord { return aspects.Defaults(a.catalog, product.Category) },
		func(ctx context.Context) (map[string]models.AspectRecord, error) {
			return a.aspects.Extract(ctx, norm.EmojiReplaced, product.Category), nil
		})

	mentions := runStage(ctx, &d, StageCompetitors,
		func() []models.CompetitorMention { return []models.CompetitorMention{} },
		func(ctx context.Context) ([]models.CompetitorMention, error) {
			return a.competitors.Detect(ctx, text, product), nil
		})

	assessment := runStage(ctx, &d, StageQuality,
		func() models.QualityAssessment { return quality.Zero(sig.EmojiCount) },
		func(context.Context) (models.QualityAssessment, error) {
			return quality.Assess(plain, sig), nil
		})

	entities := runStage(ctx, &d, StageEntities, signals.EmptyEntities,
		func(ctx context.Context) (models.Entities, error) {
			return a.entities.Entities(ctx, plain)
		})

	emotions := runStage(ctx, &d, StageEmotions, signals.NeutralEmotions,
		func(ctx context.Context) (models.Emotions, error) {
			return signals.DetectEmotions(ctx, a.emotions, text, sig)
		})

	keywords := runStage(ctx, &d, StageKeywords,
		func() []models.Keyword { return []models.Keyword{} },
		func(ctx context.Context) ([]models.Keyword, error) {
			return a.keywords.Keywords(ctx, text)
		})

	topics := []models.Topic{}
	if a.topics != nil {
		topics = runStage(ctx, &d, StageTopics,
			func() []models.Topic { return []models.Topic{} },
			func(ctx context.Context) ([]models.Topic, error) {
				return a.topics.Topics(ctx, plain, product)
			})
	}

	return models.AnnotationResult{
		AnnotationID:      AnnotationID(text, product),
		Product:           product,
		OriginalText:      text,
		ProcessedText:     norm.Cleaned,
		EmojiReplacedText: norm.EmojiReplaced,
		Tokens:            nonNil(norm.Tokens),
		TextFeatures:      norm.Features,
		Emoji:             sig,
		EmojiContexts:     nonNil(contexts),
		Sentiment:         dist,
		Aspects:           aspectRecords,
		Competitors:       mentions,
		Quality:           assessment,
		Entities:          entities,
		Emotions:          emotions,
		Keywords:          nonNil(keywords),
		Topics:            nonNil(topics),
		DegradedStages:    d.sorted(),
	}
}

// AnnotateBatch annotates reviews concurrently, at most parallelism at a
// time, and returns the results in input order.
func (a *Annotator) AnnotateBatch(ctx context.Context, reviews []models.ReviewRequest, parallelism int) ([]models.AnnotationResult, error) {
	results := make([]models.AnnotationResult, len(reviews))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, review := range reviews {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.Annotate(ctx, review.Text, review.Product)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// neutralResult is returned for blank reviews without calling any producer.
func neutralResult(text string, product models.ProductContext) models.AnnotationResult {
	return models.AnnotationResult{
		AnnotationID:      AnnotationID(text, product),
		Product:           product,
		OriginalText:      text,
		ProcessedText:     "",
		EmojiReplacedText: "",
		Tokens:            []string{},
		TextFeatures:      models.TextFeatures{Length: len([]rune(text))},
		Emoji:             models.EmojiSignal{},
		EmojiContexts:     []models.EmojiContext{},
		Sentiment:         sentiment.Prior(),
		Aspects:           map[string]models.AspectRecord{},
		Competitors:       []models.CompetitorMention{},
		Quality:           quality.Zero(0),
		Entities:          signals.EmptyEntities(),
		Emotions:          signals.NeutralEmotions(),
		Keywords:          []models.Keyword{},
		Topics:            []models.Topic{},
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
