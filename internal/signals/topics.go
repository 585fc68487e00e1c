package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	maxTopics = 5

	openAITopicPrompt = `Identify the main topics of the product review you are given.
**Important**:
- Return at most 5 topics.
- Each topic is a short lowercase noun phrase such as "battery life" or "customer service".
- Give each topic a confidence between 0 and 1.

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{
  "topics": [
    {"topic": "XXX", "confidence": 0.0}
  ]
}

### **REQUIREMENTS**
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.

If the review has no identifiable topic, return:
{"topics": []}
`
)

// OpenAITopicProducer asks a chat model for the topics of a single review.
type OpenAITopicProducer struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAITopicProducer(client *openai.Client, model openai.ChatModel) *OpenAITopicProducer {
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	return &OpenAITopicProducer{client: client, model: model}
}

type topicRequest struct {
	Review      string `json:"review"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	ProductName string `json:"product_name,omitempty"`
}

func (o *OpenAITopicProducer) Topics(ctx context.Context, text string, product models.ProductContext) ([]models.Topic, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Topic{}, nil
	}

	payload, err := json.Marshal(topicRequest{
		Review:      text,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		ProductName: product.ProductName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal topic request: %w", err)
	}

	chatCompletion, err := o.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(openAITopicPrompt),
				openai.UserMessage(string(payload)),
			}),
			Model:       openai.F(o.model),
			Temperature: openai.Float(0.2),
		})
	if err != nil {
		return nil, fmt.Errorf("topic completion failed: %w", err)
	}
	if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("topic completion returned an empty response")
	}

	var resp models.OpenAITopicResponse
	raw := cleanOpenAIResponse(chatCompletion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		slog.Warn("[TopicProducer] Failed to parse topics",
			slog.String("error", err.Error()),
			slog.Int("raw_response_length", len(raw)))
		return nil, fmt.Errorf("failed to parse topics: %w", err)
	}

	return cleanTopics(resp.Topics), nil
}

func cleanOpenAIResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`)
	response = strings.ReplaceAll(response, "”", `"`)

	return strings.TrimSpace(response)
}

// cleanTopics drops blank and duplicate topics, clamps confidences and caps
// the list.
func cleanTopics(topics []models.Topic) []models.Topic {
	seen := make(map[string]struct{})
	out := make([]models.Topic, 0, len(topics))
	for _, t := range topics {
		name := strings.ToLower(strings.TrimSpace(t.Topic))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, models.Topic{Topic: name, Confidence: min(1, max(0, t.Confidence))})
		if len(out) == maxTopics {
			break
		}
	}
	return out
}
