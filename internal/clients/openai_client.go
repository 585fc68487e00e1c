package clients

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIRequestTimeout = 60 * time.Second
)

var (
	openAIClientInstance *openai.Client
	openAIOnce           sync.Once
)

var ErrMissingOpenAIKey = errors.New("[OpenAIClient] missing OPENAI_API_KEY")

// GetOpenAIClient returns a shared client used by the topic producer.
func GetOpenAIClient(apiKey string) (*openai.Client, error) {
	if apiKey == "" {
		return nil, ErrMissingOpenAIKey
	}
	openAIOnce.Do(func() {
		openAIClientInstance = openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(&http.Client{Timeout: openAIRequestTimeout}),
			option.WithMaxRetries(2),
		)
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance, nil
}
