package annotator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/spacesedan/reviewlens/internal/metrics"
)

const (
	StageEmoji       = "emoji"
	StageNormalize   = "normalize"
	StageSentiment   = "sentiment"
	StageAspects     = "aspects"
	StageCompetitors = "competitors"
	StageQuality     = "quality"
	StageEntities    = "entities"
	StageEmotions    = "emotions"
	StageKeywords    = "keywords"
	StageTopics      = "topics"
)

// degraded collects the stages of one annotation that fell back to their
// default. A stage may be recorded more than once.
type degraded []string

func (d *degraded) add(stage string) {
	*d = append(*d, stage)
}

func (d degraded) sorted() []string {
	if len(d) == 0 {
		return nil
	}
	out := append([]string(nil), d...)
	sort.Strings(out)
	return slices.Compact(out)
}

// runStage calls fn and returns its result. An error or a panic is logged,
// counted, recorded in d and replaced by fallback().
func runStage[T any](ctx context.Context, d *degraded, stage string, fallback func() T, fn func(context.Context) (T, error)) (result T) {
	defer func() {
		if r := recover(); r != nil {
			fail(d, stage, fmt.Errorf("panic: %v", r))
			result = fallback()
		}
	}()

	out, err := fn(ctx)
	if err != nil {
		fail(d, stage, err)
		return fallback()
	}
	return out
}

func fail(d *degraded, stage string, err error) {
	slog.Warn("[Annotator] Stage failed, using default",
		slog.String("stage", stage),
		slog.String("error", err.Error()))
	metrics.StageFailures.WithLabelValues(stage).Inc()
	d.add(stage)
}
