// Package bootstrap builds the annotator and its classifiers from Settings.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/spacesedan/reviewlens/config"
	"github.com/spacesedan/reviewlens/internal/annotator"
	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/monitoring"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/spacesedan/reviewlens/internal/sentiment/hugot"
	"github.com/spacesedan/reviewlens/internal/signals"
)

type Pipeline struct {
	Annotator  *annotator.Annotator
	// Health is set when the classifier is remote and can be polled.
	Health     monitoring.HealthChecker
	HealthName string
	closers    []func() error
}

func (p *Pipeline) Close() error {
	var errs []error
	for _, c := range p.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// NewPipeline wires the classifier backend selected by s behind circuit
// breakers and enables topics when an OpenAI key is configured.
func NewPipeline(s *config.Settings, cat *catalog.Catalog) (*Pipeline, error) {
	p := &Pipeline{}
	var opts []annotator.Option

	switch s.ClassifierBackend {
	case config.BackendHugot:
		h, err := hugot.NewClassifier(s.HugotModel, s.HugotModelDir)
		if err != nil {
			return nil, fmt.Errorf("[Bootstrap] failed to load hugot classifier: %w", err)
		}
		p.closers = append(p.closers, h.Close)
		opts = append(opts, annotator.WithClassifier(sentiment.NewBreaker("hugot", h)))
	case config.BackendRemote:
		client := clients.NewClassifierServiceClient(clients.ClassifierServiceConfig{
			BaseURL:      s.ClassifierURL,
			TokenURL:     s.ClassifierTokenURL,
			ClientID:     s.ClassifierClientID,
			ClientSecret: s.ClassifierClientSecret,
			Timeout:      s.AnnotateTimeout,
		})
		opts = append(opts,
			annotator.WithClassifier(sentiment.NewBreaker("remote", client)),
			annotator.WithAspectClassifier(sentiment.NewAspectBreaker("remote-aspect", client)))
		p.Health = client
		p.HealthName = "remote"
	}

	if s.OpenAIAPIKey != "" {
		client, err := clients.GetOpenAIClient(s.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}
		opts = append(opts, annotator.WithTopicProducer(
			signals.NewOpenAITopicProducer(client, openai.ChatModel(s.OpenAIModel))))
	}

	slog.Info("[Bootstrap] Annotator pipeline ready",
		slog.String("classifier", s.ClassifierBackend),
		slog.Bool("topics", s.OpenAIAPIKey != ""))

	p.Annotator = annotator.New(cat, opts...)
	return p, nil
}
