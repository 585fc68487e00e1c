package quality

import (
	"strings"
	"testing"

	"github.com/spacesedan/reviewlens/internal/models"
)

const detailedReview = "Solid phone. I bought this Pixel 8 in March 2024 and have used it daily for three weeks on long trips across the country. The battery is great, but the screen scratches easily."

func assertBounded(t *testing.T, q models.QualityAssessment) {
	t.Helper()
	if q.QualityScore < 0 || q.QualityScore > 1 {
		t.Errorf("QualityScore %v out of [0,1]", q.QualityScore)
	}
	if q.AuthenticityScore < 0 || q.AuthenticityScore > 1 {
		t.Errorf("AuthenticityScore %v out of [0,1]", q.AuthenticityScore)
	}
	if q.IsLikelyFake != (q.AuthenticityScore < 0.3) {
		t.Errorf("IsLikelyFake = %v with authenticity %v", q.IsLikelyFake, q.AuthenticityScore)
	}
}

func TestAssessDetailedReview(t *testing.T) {
	t.Parallel()

	got := Assess(detailedReview, models.EmojiSignal{})
	assertBounded(t, got)

	af := got.AuthenticityFactors
	if !af.HasProsAndCons || !af.PersonalExperience || !af.NaturalLanguage || !af.ReasonableEmojiUsage {
		t.Errorf("AuthenticityFactors = %+v, want all true", af)
	}
	if got.AuthenticityScore != 1 || got.IsLikelyFake {
		t.Errorf("authenticity = %v fake = %v, want 1 and false", got.AuthenticityScore, got.IsLikelyFake)
	}
	if got.QualityFactors.SpecificityScore <= 0 {
		t.Errorf("SpecificityScore = %v, want > 0", got.QualityFactors.SpecificityScore)
	}
	if !got.EmojiUsageAppropriate {
		t.Error("no emoji should be appropriate")
	}
}

func TestAssessGenericReview(t *testing.T) {
	t.Parallel()

	got := Assess("Great product, good quality, fast delivery. Highly recommend, five stars, worth the money!", models.EmojiSignal{})
	assertBounded(t, got)

	if got.QualityFactors.GenericPhraseCount != 6 {
		t.Errorf("GenericPhraseCount = %d, want 6", got.QualityFactors.GenericPhraseCount)
	}
	if got.QualityFactors.OriginalityScore != 0 {
		t.Errorf("OriginalityScore = %v, want 0", got.QualityFactors.OriginalityScore)
	}
}

func TestAssessExcessiveEmoji(t *testing.T) {
	t.Parallel()

	sig := models.EmojiSignal{HasEmojis: true, EmojiCount: 15, DominantClass: models.LabelPositive, Score: 1}
	got := Assess("love it so much wow", sig)
	assertBounded(t, got)

	qf := got.QualityFactors
	if qf.EmojiScore != 0 || !qf.ExcessiveEmojis {
		t.Errorf("QualityFactors = %+v, want emoji penalty", qf)
	}
	if got.AuthenticityFactors.ReasonableEmojiUsage || got.EmojiUsageAppropriate {
		t.Error("15 emoji over 5 words should not be reasonable")
	}
	want := 0.3*LengthScore(5) + 0.3*qf.SpecificityScore + 0.2*qf.OriginalityScore
	if diff := got.QualityScore - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("QualityScore = %v, want %v", got.QualityScore, want)
	}
}

func TestAssessEmpty(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   \n\t"} {
		got := Assess(text, models.EmojiSignal{})
		assertBounded(t, got)
		if got.QualityScore != 0 || got.AuthenticityScore != 0 || !got.IsLikelyFake {
			t.Errorf("Assess(%q) = %+v, want zero score flagged fake", text, got)
		}
	}
}

func TestAssessEmojiOnly(t *testing.T) {
	t.Parallel()

	got := Assess("", models.EmojiSignal{HasEmojis: true, EmojiCount: 3, DominantClass: models.LabelPositive, Score: 1})
	assertBounded(t, got)

	qf := got.QualityFactors
	if qf.EmojiCount != 3 || qf.EmojiScore != 1 || qf.ExcessiveEmojis {
		t.Errorf("QualityFactors = %+v, want three reasonable emoji", qf)
	}
	if got.QualityScore != 0 {
		t.Errorf("QualityScore = %v, want 0", got.QualityScore)
	}
	if Zero(15).QualityFactors.EmojiScore != 0 {
		t.Error("Zero(15) should carry the excessive emoji penalty")
	}
}

func TestHasMinLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		words int
		want  bool
	}{
		{9, false},
		{10, true},
		{25, true},
	}
	for _, tt := range tests {
		text := strings.TrimSpace(strings.Repeat("word ", tt.words))
		if got := Assess(text, models.EmojiSignal{}).QualityFactors.HasMinLength; got != tt.want {
			t.Errorf("HasMinLength for %d words = %v, want %v", tt.words, got, tt.want)
		}
	}
}

func TestAssessBounded(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"ok",
		strings.Repeat("This blender from Ninja crushed 12 cups of ice in 30 seconds. ", 20),
		"I tested it. Bad. But I love the color, however the motor is terrible and poor.",
	}
	for _, in := range inputs {
		assertBounded(t, Assess(in, models.EmojiSignal{EmojiCount: 2, HasEmojis: true}))
	}
}

func TestHeuristics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) bool
		text string
		want bool
	}{
		{"balanced", IsBalanced, "Good sound but short cable", true},
		{"only praise", IsBalanced, "Good sound and great cable", false},
		{"pro is a whole word", IsBalanced, "Product is bad", false},
		{"personal", HasPersonalExperience, "We purchased two of these", true},
		{"no verb", HasPersonalExperience, "My dog likes it", false},
		{"uniform sentences", HasNaturalLanguage, "It is good. It is good. It is good.", false},
		{"single sentence", HasNaturalLanguage, "Works fine for the price", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.fn(tt.text); got != tt.want {
				t.Errorf("%q = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAuthenticityScore(t *testing.T) {
	t.Parallel()

	got := AuthenticityScore(models.AuthenticityFactors{HasProsAndCons: true, ReasonableEmojiUsage: true})
	if got != 0.5 {
		t.Errorf("AuthenticityScore = %v, want 0.5", got)
	}
}
