package models

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// Prediction is the contract every pluggable classifier returns.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentDistribution is a three way probability distribution. The three
// components always sum to 1 and Confidence is the winning component.
type SentimentDistribution struct {
	Positive       float64 `json:"positive"`
	Neutral        float64 `json:"neutral"`
	Negative       float64 `json:"negative"`
	Primary        string  `json:"primary_sentiment"`
	Confidence     float64 `json:"confidence"`
	Subjectivity   float64 `json:"subjectivity"`
	EmojiInfluence float64 `json:"emoji_influence"`
}
