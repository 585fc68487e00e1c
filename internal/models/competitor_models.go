package models

const ComparisonDirectMention = "direct_mention"

type CompetitorMention struct {
	Competitor     string `json:"competitor"`
	Context        string `json:"context"`
	ComparisonType string `json:"comparison_type"`
	FavorableToUs  bool   `json:"favorable_to_us"`
}
