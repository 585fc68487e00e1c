package models

// AnnotationResult bundles every signal derived from one review.
type AnnotationResult struct {
	AnnotationID      string                  `json:"annotation_id"`
	Product           ProductContext          `json:"product"`
	OriginalText      string                  `json:"original_text"`
	ProcessedText     string                  `json:"processed_text"`
	EmojiReplacedText string                  `json:"emoji_replaced_text"`
	Tokens            []string                `json:"tokens"`
	TextFeatures      TextFeatures            `json:"text_features"`
	Emoji             EmojiSignal             `json:"emoji_analysis"`
	EmojiContexts     []EmojiContext          `json:"emoji_contexts"`
	Sentiment         SentimentDistribution   `json:"sentiment_analysis"`
	Aspects           map[string]AspectRecord `json:"aspect_sentiments"`
	Competitors       []CompetitorMention     `json:"competitor_mentions"`
	Quality           QualityAssessment       `json:"quality_metrics"`
	Entities          Entities                `json:"entities"`
	Emotions          Emotions                `json:"emotions"`
	Keywords          []Keyword               `json:"keywords"`
	Topics            []Topic                 `json:"topics"`
	DegradedStages    []string                `json:"degraded_stages,omitempty"`
}

// TextFeatures are surface statistics of the raw review text.
type TextFeatures struct {
	Length             int     `json:"length"`
	WordCount          int     `json:"word_count"`
	AvgWordLength      float64 `json:"avg_word_length"`
	HasNumbers         bool    `json:"has_numbers"`
	HasUppercase       bool    `json:"has_uppercase"`
	HasPunctuation     bool    `json:"has_punctuation"`
	PositiveIndicators int     `json:"positive_indicators"`
	NegativeIndicators int     `json:"negative_indicators"`
}
