package models

type QualityFactors struct {
	WordCount          int     `json:"word_count"`
	HasMinLength       bool    `json:"has_min_length"`
	LengthScore        float64 `json:"length_score"`
	SpecificityScore   float64 `json:"specificity_score"`
	GenericPhraseCount int     `json:"generic_phrase_count"`
	OriginalityScore   float64 `json:"originality_score"`
	EmojiCount         int     `json:"emoji_count"`
	ExcessiveEmojis    bool    `json:"excessive_emojis"`
	EmojiToWordRatio   float64 `json:"emoji_to_word_ratio"`
	EmojiScore         float64 `json:"emoji_score"`
}

type AuthenticityFactors struct {
	HasProsAndCons       bool `json:"has_pros_and_cons"`
	PersonalExperience   bool `json:"personal_experience"`
	NaturalLanguage      bool `json:"verified_language_patterns"`
	ReasonableEmojiUsage bool `json:"reasonable_emoji_usage"`
}

type QualityAssessment struct {
	QualityScore          float64             `json:"quality_score"`
	AuthenticityScore     float64             `json:"authenticity_score"`
	IsLikelyFake          bool                `json:"is_likely_fake"`
	EmojiUsageAppropriate bool                `json:"emoji_usage_appropriate"`
	QualityFactors        QualityFactors      `json:"quality_factors"`
	AuthenticityFactors   AuthenticityFactors `json:"authenticity_factors"`
}
