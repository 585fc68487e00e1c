package sentiment

import (
	"math"

	"github.com/spacesedan/reviewlens/internal/models"
	"gonum.org/v1/gonum/floats"
)

const (
	emojiWeightPerGlyph = 0.05
	maxEmojiWeight      = 0.3
	oppositeDamping     = 0.5
)

// Prior is the distribution used when there is no text to classify.
func Prior() models.SentimentDistribution {
	return normalize(0.33, 0.34, 0.33)
}

// Fuse shifts a text distribution towards the dominant emoji class. The shift
// grows with the number of emoji and is capped at maxEmojiWeight.
func Fuse(text models.SentimentDistribution, sig models.EmojiSignal) models.SentimentDistribution {
	pos, neg := text.Positive, text.Negative

	if sig.HasEmojis && sig.EmojiCount > 0 {
		weight := math.Min(maxEmojiWeight, float64(sig.EmojiCount)*emojiWeightPerGlyph)
		switch sig.DominantClass {
		case models.LabelPositive:
			pos += weight
			neg -= weight * oppositeDamping
		case models.LabelNegative:
			neg += weight
			pos -= weight * oppositeDamping
		}
	}

	pos = math.Max(0, pos)
	neg = math.Max(0, neg)
	neu := math.Max(0, 1-pos-neg)

	fused := normalize(pos, neu, neg)
	fused.Subjectivity = clamp01(text.Subjectivity)
	if sig.HasEmojis {
		fused.EmojiInfluence = sig.Score
	}
	return fused
}

// normalize rescales the three components to sum to one and fills in the
// primary label and confidence. All-zero input yields the prior.
func normalize(pos, neu, neg float64) models.SentimentDistribution {
	v := []float64{math.Max(0, pos), math.Max(0, neu), math.Max(0, neg)}
	total := floats.Sum(v)
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		v = []float64{0.33, 0.34, 0.33}
		total = 1
	}
	floats.Scale(1/total, v)

	d := models.SentimentDistribution{Positive: v[0], Neutral: v[1], Negative: v[2]}
	d.Primary, d.Confidence = argMax(d)
	return d
}

// argMax breaks ties in the order positive, neutral, negative.
func argMax(d models.SentimentDistribution) (string, float64) {
	label, best := models.LabelPositive, d.Positive
	if d.Neutral > best {
		label, best = models.LabelNeutral, d.Neutral
	}
	if d.Negative > best {
		label, best = models.LabelNegative, d.Negative
	}
	return label, best
}
