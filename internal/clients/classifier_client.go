package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/reviewlens/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	CLASSIFY_PATH        = "/classify"
	CLASSIFY_ASPECT_PATH = "/classify_aspect"
	HEALTH_PATH          = "/health"
)

type ClassifierServiceConfig struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// ClassifierServiceClient calls a remote sentiment model over HTTP. It
// satisfies both the text and the aspect classifier contracts.
type ClassifierServiceClient struct {
	Client  *http.Client
	baseURL string
	retries int
	backoff time.Duration
}

// NewClassifierServiceClient authenticates with the OAuth2 client credentials
// flow when a token URL is configured and uses a plain client otherwise.
func NewClassifierServiceClient(cfg ClassifierServiceConfig) *ClassifierServiceClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.TokenURL != "" {
		oauthConf := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauthConf.Client(ctx)
		httpClient.Timeout = timeout
	}

	slog.Info("[ClassifierClient] Initializing Client",
		slog.String("base_url", cfg.BaseURL),
		slog.Duration("timeout", timeout),
		slog.Bool("oauth", cfg.TokenURL != ""))

	return &ClassifierServiceClient{
		Client:  httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		retries: MAX_RETRIES,
		backoff: INITIAL_BACKOFF,
	}
}

// WithRetry overrides the retry policy.
func (c *ClassifierServiceClient) WithRetry(retries int, backoff time.Duration) *ClassifierServiceClient {
	c.retries = max(retries, 1)
	c.backoff = backoff
	return c
}

func (c *ClassifierServiceClient) Classify(ctx context.Context, text string) (models.Prediction, error) {
	var result models.ClassificationResponse
	start := time.Now()

	err := c.postJSON(ctx, CLASSIFY_PATH, models.ClassificationRequest{Inputs: text}, &result)
	if err != nil {
		return models.Prediction{}, err
	}

	slog.Debug("[ClassifierClient] Classification request successful",
		slog.String("label", result.Label),
		slog.Duration("elapsed", time.Since(start)))
	return models.Prediction{Label: result.Label, Score: result.Score}, nil
}

func (c *ClassifierServiceClient) ClassifyAspect(ctx context.Context, aspect, sentence string) (models.Prediction, error) {
	var result models.ClassificationResponse

	err := c.postJSON(ctx, CLASSIFY_ASPECT_PATH, models.ClassificationRequest{Inputs: sentence, Aspect: aspect}, &result)
	if err != nil {
		return models.Prediction{}, err
	}
	return models.Prediction{Label: result.Label, Score: result.Score}, nil
}

// HealthCheck reports whether the service answers its health endpoint.
func (c *ClassifierServiceClient) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HEALTH_PATH, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		slog.Warn("[ClassifierClient] Health check failed",
			slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *ClassifierServiceClient) DoWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := c.backoff

	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 && req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, bodyErr
			}
			req.Body = body
		}

		resp, err = c.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[ClassifierClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		if attempt == c.retries-1 {
			break
		}
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, MAX_BACKOFF)
	}

	if err == nil {
		err = fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil, err
}

func (c *ClassifierServiceClient) postJSON(ctx context.Context, path string, input any, output any) error {
	endpoint := c.baseURL + path

	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("[ClassifierClient] failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("[ClassifierClient] failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.DoWithRetry(req)
	if err != nil {
		slog.Error("[ClassifierClient] Failed request after retries",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("[ClassifierClient] request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("[ClassifierClient] failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("[ClassifierClient] unexpected status %d: %s", resp.StatusCode, getPreview(respBody).Value.String())
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[ClassifierClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return fmt.Errorf("[ClassifierClient] failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
