package competitors

import (
	"context"
	"errors"
	"testing"

	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

type fixedClassifier struct {
	label string
	err   error
}

func (f fixedClassifier) Classify(context.Context, string) (models.Prediction, error) {
	if f.err != nil {
		return models.Prediction{}, f.err
	}
	return models.Prediction{Label: f.label, Score: 0.9}, nil
}

var smartphone = models.ProductContext{Category: "Electronics", Subcategory: "Smartphones", Brand: "Pixelio"}

func TestDetectSwitchedFrom(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), sentiment.NewVaderClassifier())
	got := d.Detect(context.Background(),
		"I switched from Samsung because this camera is so much better", smartphone)

	if len(got) != 1 {
		t.Fatalf("got %d mentions, want 1: %+v", len(got), got)
	}
	m := got[0]
	if m.Competitor != "Samsung" || m.ComparisonType != "switched from" || !m.FavorableToUs {
		t.Errorf("mention = %+v, want favorable Samsung via switched from", m)
	}
}

func TestDetectCapsMentions(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{label: models.LabelNeutral})
	text := "I own Apple, Samsung, Google, OnePlus, Xiaomi, Motorola and Nokia phones."
	got := d.Detect(context.Background(), text, smartphone)

	if len(got) != MaxMentions {
		t.Fatalf("got %d mentions, want %d", len(got), MaxMentions)
	}
	want := []string{"Apple", "Samsung", "Google", "OnePlus", "Xiaomi"}
	for i, m := range got {
		if m.Competitor != want[i] {
			t.Errorf("mention %d = %s, want %s (text order)", i, m.Competitor, want[i])
		}
		if m.ComparisonType != models.ComparisonDirectMention {
			t.Errorf("mention %d type = %s, want direct mention", i, m.ComparisonType)
		}
	}
}

func TestDetectNoDuplicateDirectMentions(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{label: models.LabelPositive})
	got := d.Detect(context.Background(), "Samsung this, Samsung that, samsung everywhere.", smartphone)

	if len(got) != 1 {
		t.Fatalf("got %d mentions, want 1: %+v", len(got), got)
	}
	if got[0].FavorableToUs {
		t.Error("direct mention with positive local sentiment should not be favorable")
	}
}

func TestDetectKeywordTakesPrecedence(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{label: models.LabelNegative})
	got := d.Detect(context.Background(), "Honestly Apple is better than this. Apple wins.", smartphone)

	if len(got) != 1 {
		t.Fatalf("got %d mentions, want 1: %+v", len(got), got)
	}
	if got[0].ComparisonType != "better than" || !got[0].FavorableToUs {
		t.Errorf("mention = %+v, want favorable better than", got[0])
	}
}

func TestDetectExcludesOwnBrand(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{label: models.LabelNeutral})
	product := models.ProductContext{Category: "Electronics", Subcategory: "Smartphones", Brand: "apple"}
	if got := d.Detect(context.Background(), "Apple did it again.", product); len(got) != 0 {
		t.Errorf("own brand reported as competitor: %+v", got)
	}
}

func TestDetectWholeWordOnly(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{label: models.LabelNeutral})
	got := d.Detect(context.Background(), "The algorithm in this phone is smart.", smartphone)
	if len(got) != 0 {
		t.Errorf("substring matched as competitor: %+v", got)
	}
}

func TestDetectGenericOnlyForUnknownCategory(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{label: models.LabelNeutral})
	product := models.ProductContext{Category: "Garden"}
	got := d.Detect(context.Background(), "Cheaper than at Walmart, and Samsung has nothing like it.", product)

	if len(got) != 1 || got[0].Competitor != "Walmart" {
		t.Errorf("mentions = %+v, want only Walmart", got)
	}
}

func TestDetectClassifierFailureIsNeutral(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{err: errors.New("timeout")})
	got := d.Detect(context.Background(), "Compared to Samsung it is fine.", smartphone)

	if len(got) != 1 {
		t.Fatalf("got %d mentions, want 1", len(got))
	}
	if got[0].ComparisonType != "compared to" || got[0].FavorableToUs {
		t.Errorf("mention = %+v, want unfavorable compared to", got[0])
	}
}

func TestDetectEmpty(t *testing.T) {
	t.Parallel()

	d := NewDetector(catalog.Default(), fixedClassifier{label: models.LabelNeutral})
	got := d.Detect(context.Background(), "", smartphone)
	if got == nil || len(got) != 0 {
		t.Errorf("Detect(\"\") = %#v, want empty non-nil slice", got)
	}
}

func TestFavorable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		polarity catalog.Polarity
		local    string
		want     bool
	}{
		{catalog.PolarityCompetitorBetter, models.LabelNegative, true},
		{catalog.PolarityCompetitorBetter, models.LabelPositive, false},
		{catalog.PolarityCompetitorWorse, models.LabelNegative, true},
		{catalog.PolarityCompetitorWorse, models.LabelPositive, true},
		{catalog.PolarityNeutral, models.LabelPositive, true},
		{catalog.PolarityNeutral, models.LabelNeutral, false},
	}
	for _, tt := range tests {
		if got := favorable(tt.polarity, tt.local); got != tt.want {
			t.Errorf("favorable(%s, %s) = %v, want %v", tt.polarity, tt.local, got, tt.want)
		}
	}
}
