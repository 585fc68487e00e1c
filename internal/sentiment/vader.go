package sentiment

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/spacesedan/reviewlens/internal/models"
)

// compound scores inside (-vaderThreshold, vaderThreshold) are neutral
const vaderThreshold = 0.20

var analyzer = govader.NewSentimentIntensityAnalyzer()

// AnalyzeWithVADER returns the VADER compound score of text and its label.
func AnalyzeWithVADER(text string) (float64, string) {
	score := analyzer.PolarityScores(text).Compound

	var label string
	if score >= vaderThreshold {
		label = models.LabelPositive
	} else if score <= -vaderThreshold {
		label = models.LabelNegative
	} else {
		label = models.LabelNeutral
	}

	return score, label
}

// Subjectivity is the share of text VADER does not consider neutral.
func Subjectivity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return clamp01(1 - analyzer.PolarityScores(text).Neutral)
}

// VaderClassifier is the default primary classifier. It needs no model files
// or network and never fails on non-empty text.
type VaderClassifier struct{}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{}
}

func (v *VaderClassifier) Classify(ctx context.Context, text string) (models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return models.Prediction{}, err
	}
	if strings.TrimSpace(text) == "" {
		return models.Prediction{}, ErrEmptyText
	}
	return vaderPrediction(text), nil
}

// vaderPrediction maps the compound score onto a label confidence: strong
// polarity means a confident positive or negative, weak polarity a
// confident neutral.
func vaderPrediction(text string) models.Prediction {
	score, label := AnalyzeWithVADER(text)
	if label == models.LabelNeutral {
		return models.Prediction{Label: label, Score: 1 - math.Abs(score)}
	}
	return models.Prediction{Label: label, Score: 0.5 + math.Abs(score)/2}
}

var clauseBoundary = regexp.MustCompile(`(?i)[,;]|\b(?:but|however|although|though|while|whereas)\b`)

// VaderAspectClassifier scores only the clause that talks about the aspect,
// so "great battery, but the screen is dim" gets a different label for each.
type VaderAspectClassifier struct {
	keywords map[string][]string
}

// NewVaderAspectClassifier takes the keywords that identify each aspect.
// Aspects without keywords are located by their own name.
func NewVaderAspectClassifier(keywords map[string][]string) *VaderAspectClassifier {
	return &VaderAspectClassifier{keywords: keywords}
}

func (v *VaderAspectClassifier) ClassifyAspect(ctx context.Context, aspect, sentence string) (models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return models.Prediction{}, err
	}
	if strings.TrimSpace(sentence) == "" {
		return models.Prediction{}, ErrEmptyText
	}
	return vaderPrediction(v.clauseFor(aspect, sentence)), nil
}

func (v *VaderAspectClassifier) clauseFor(aspect, sentence string) string {
	keywords := v.keywords[aspect]
	if len(keywords) == 0 {
		keywords = []string{aspect}
	}

	for _, clause := range clauseBoundary.Split(sentence, -1) {
		lower := strings.ToLower(clause)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return clause
			}
		}
	}
	return sentence
}
