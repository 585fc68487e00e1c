package aspects

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/spacesedan/reviewlens/internal/catalog"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

type scriptedClassifier struct {
	preds map[string]models.Prediction
	err   error
}

func (s scriptedClassifier) ClassifyAspect(_ context.Context, _, sentence string) (models.Prediction, error) {
	if s.err != nil {
		return models.Prediction{}, s.err
	}
	if p, ok := s.preds[sentence]; ok {
		return p, nil
	}
	return models.Prediction{Label: models.LabelNeutral, Score: 0.5}, nil
}

func TestExtractBatteryAndScreen(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	ex := NewExtractor(cat, sentiment.NewVaderAspectClassifier(cat.AspectKeywords()))

	got := ex.Extract(context.Background(),
		"Great battery life, but screen is disappointing positive_emoji positive_emoji", "Electronics")

	battery := got["battery"]
	if !battery.Mentioned || battery.Sentiment != models.LabelPositive {
		t.Errorf("battery = %+v, want mentioned positive", battery)
	}
	screen := got["screen"]
	if !screen.Mentioned || screen.Sentiment != models.LabelNegative {
		t.Errorf("screen = %+v, want mentioned negative", screen)
	}
	camera := got["camera"]
	if camera.Mentioned || camera.Sentiment != "" || camera.Confidence != 0 {
		t.Errorf("camera = %+v, want unmentioned", camera)
	}
	if len(got) != len(cat.AspectsFor("Electronics")) {
		t.Errorf("got %d aspects, want one per vocabulary entry", len(got))
	}
}

func TestExtractAggregatesHits(t *testing.T) {
	t.Parallel()

	text := "The price is fair. Price went up later. The price matched the cost of rivals. Cheap price overall."
	ex := NewExtractor(catalog.Default(), scriptedClassifier{preds: map[string]models.Prediction{
		"The price is fair.":   {Label: models.LabelPositive, Score: 0.8},
		"Price went up later.": {Label: models.LabelNegative, Score: 0.8},
		"Cheap price overall.": {Label: models.LabelPositive, Score: 0.4},
	}})

	got := ex.Extract(context.Background(), text, "Unknown Category")["price"]
	if !got.Mentioned {
		t.Fatal("price should be mentioned")
	}
	if got.Sentiment != models.LabelPositive {
		t.Errorf("Sentiment = %s, want first highest scoring label", got.Sentiment)
	}
	// 0.8, 0.8, 0.5, 0.4
	if want := 0.625; got.Confidence < want-1e-9 || got.Confidence > want+1e-9 {
		t.Errorf("Confidence = %v, want %v", got.Confidence, want)
	}
	wantExamples := []string{"The price is fair.", "Price went up later.", "The price matched the cost of rivals."}
	if !reflect.DeepEqual(got.ExampleSentences, wantExamples) {
		t.Errorf("ExampleSentences = %q, want %q", got.ExampleSentences, wantExamples)
	}
}

func TestExtractClassifierFailure(t *testing.T) {
	t.Parallel()

	ex := NewExtractor(catalog.Default(), scriptedClassifier{err: errors.New("model offline")})
	got := ex.Extract(context.Background(), "Delivery was quick.", "")["delivery"]

	if !got.Mentioned || got.Sentiment != models.LabelNeutral || got.Confidence != 0 {
		t.Errorf("delivery = %+v, want mentioned neutral with zero confidence", got)
	}
}

func TestExtractEmptyText(t *testing.T) {
	t.Parallel()

	got := NewExtractor(catalog.Default(), scriptedClassifier{}).Extract(context.Background(), "", "Fashion")
	for aspect, rec := range got {
		if rec.Mentioned {
			t.Errorf("%s mentioned in empty text", aspect)
		}
	}
}
