package models

// AspectRecord holds the sentiment for one product attribute. Sentiment is
// empty when the aspect is not mentioned.
type AspectRecord struct {
	Aspect           string   `json:"aspect"`
	Mentioned        bool     `json:"mentioned"`
	Sentiment        string   `json:"sentiment,omitempty"`
	Confidence       float64  `json:"confidence"`
	ExampleSentences []string `json:"example_sentences"`
}
