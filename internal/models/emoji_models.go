package models

type EmojiBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// EmojiSignal is the aggregate sentiment carried by the emoji in a review.
// Score is (positive-negative)/EmojiCount and stays 0 when HasEmojis is false.
type EmojiSignal struct {
	HasEmojis     bool           `json:"has_emojis"`
	EmojiCount    int            `json:"emoji_count"`
	Breakdown     EmojiBreakdown `json:"breakdown"`
	DominantClass string         `json:"dominant_class,omitempty"`
	Score         float64        `json:"score"`
	EmojisFound   []string       `json:"emojis_found,omitempty"`
}

type EmojiContext struct {
	Emoji         string `json:"emoji"`
	Position      int    `json:"position"`
	ContextBefore string `json:"context_before"`
	ContextAfter  string `json:"context_after"`
	Sentiment     string `json:"sentiment"`
}
