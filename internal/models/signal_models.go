package models

// Signals below are produced by pluggable collaborators and are carried
// through an annotation untouched.

type Entities struct {
	Brands        []string `json:"brands"`
	Locations     []string `json:"locations"`
	Persons       []string `json:"persons"`
	Miscellaneous []string `json:"miscellaneous"`
}

type Emotions struct {
	PrimaryEmotion     string             `json:"primary_emotion"`
	EmotionScores      map[string]float64 `json:"emotion_scores"`
	EmotionalIntensity float64            `json:"emotional_intensity"`
}

type Keyword struct {
	Keyword   string  `json:"keyword"`
	Score     float64 `json:"score"`
	WordCount int     `json:"word_count"`
}

type Topic struct {
	Topic      string  `json:"topic"`
	Confidence float64 `json:"confidence"`
}
