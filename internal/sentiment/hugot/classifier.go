// Package hugot runs sentiment models locally through ONNX Runtime. It links
// the cgo tokenizers, so only the binaries that select the hugot backend
// import it.
package hugot

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

// Classifier runs a local ONNX text classification model.
type Classifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewClassifier loads modelName from modelDir, downloading it from the
// Hugging Face hub when it is not there yet.
func NewClassifier(modelName, modelDir string) (*Classifier, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath, err := hugot.DownloadModel(modelName, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to download model %s: %w", modelName, err)
	}
	slog.Info("[HugotClassifier] Model ready", slog.String("path", modelPath))

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "reviewSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	return &Classifier{session: session, pipeline: pipeline}, nil
}

func (c *Classifier) Classify(ctx context.Context, text string) (models.Prediction, error) {
	scores, err := c.run(ctx, text)
	if err != nil {
		return models.Prediction{}, err
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, nil
}

func (c *Classifier) Distribution(ctx context.Context, text string) (models.SentimentDistribution, error) {
	scores, err := c.run(ctx, text)
	if err != nil {
		return models.SentimentDistribution{}, err
	}
	return sentiment.FromScores(scores)
}

func (c *Classifier) run(ctx context.Context, text string) ([]models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := c.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sentiment.ErrUnavailable, err)
	}
	if len(result.ClassificationOutputs) == 0 || len(result.ClassificationOutputs[0]) == 0 {
		return nil, fmt.Errorf("%w: empty model output", sentiment.ErrUnavailable)
	}

	outputs := result.ClassificationOutputs[0]
	scores := make([]models.Prediction, 0, len(outputs))
	for _, o := range outputs {
		scores = append(scores, models.Prediction{Label: o.Label, Score: float64(o.Score)})
	}
	return scores, nil
}

func (c *Classifier) Close() error {
	return c.session.Destroy()
}
