package signals

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/spacesedan/reviewlens/internal/emoji"
	"github.com/spacesedan/reviewlens/internal/models"
)

const (
	EmotionJoy      = "joy"
	EmotionLove     = "love"
	EmotionSurprise = "surprise"
	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionNeutral  = "neutral"

	emojiBoost = 1.2
	emojiSeed  = 0.2
)

var (
	positiveEmotions = []string{EmotionJoy, EmotionLove, EmotionSurprise}
	negativeEmotions = []string{EmotionSadness, EmotionAnger, EmotionFear}
)

var emotionLexicon = map[string][]string{
	EmotionJoy:      {"happy", "glad", "great", "awesome", "fantastic", "pleased", "delighted", "enjoy", "fun", "excellent"},
	EmotionLove:     {"love", "adore", "lovely", "beautiful", "favorite", "favourite", "perfect"},
	EmotionSurprise: {"surprised", "surprising", "wow", "unexpected", "shocked", "amazed", "amazing"},
	EmotionSadness:  {"sad", "disappointed", "disappointing", "unhappy", "regret", "sorry", "miss"},
	EmotionAnger:    {"angry", "furious", "annoyed", "annoying", "hate", "terrible", "awful", "worst", "ridiculous"},
	EmotionFear:     {"afraid", "scared", "worried", "worry", "dangerous", "unsafe", "nervous"},
}

var strongWords = []string{"amazing", "excellent", "fantastic", "love", "perfect", "terrible", "horrible", "awful", "hate", "worst"}

// LexiconEmotionClassifier counts emotion words. Text without any of them is
// neutral.
type LexiconEmotionClassifier struct{}

func NewLexiconEmotionClassifier() *LexiconEmotionClassifier {
	return &LexiconEmotionClassifier{}
}

func (l *LexiconEmotionClassifier) Emotions(ctx context.Context, text string) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := make(map[string]float64)
	tokens := lowerWords(text)
	for emotion, words := range emotionLexicon {
		for _, w := range words {
			if n := tokens[w]; n > 0 {
				counts[emotion] += float64(n)
			}
		}
	}
	if len(counts) == 0 {
		return map[string]float64{EmotionNeutral: 1}, nil
	}
	return counts, nil
}

// DetectEmotions classifies the emoji-free text, boosts the emotions that
// agree with the dominant emoji class and normalizes the scores.
func DetectEmotions(ctx context.Context, c EmotionClassifier, text string, sig models.EmojiSignal) (models.Emotions, error) {
	scores := map[string]float64{EmotionNeutral: 1}
	if stripped := emoji.Remove(text); stripped != "" {
		raw, err := c.Emotions(ctx, stripped)
		if err != nil {
			return models.Emotions{}, err
		}
		if len(raw) > 0 {
			scores = make(map[string]float64, len(raw))
			for k, v := range raw {
				scores[strings.ToLower(k)] = math.Max(0, v)
			}
		}
	}

	if sig.HasEmojis {
		switch sig.DominantClass {
		case models.LabelPositive:
			boost(scores, positiveEmotions)
		case models.LabelNegative:
			boost(scores, negativeEmotions)
		}
	}

	normalizeScores(scores)
	return models.Emotions{
		PrimaryEmotion:     primaryEmotion(scores),
		EmotionScores:      scores,
		EmotionalIntensity: Intensity(text, sig),
	}, nil
}

func boost(scores map[string]float64, emotions []string) {
	for _, e := range emotions {
		if v, ok := scores[e]; ok {
			scores[e] = v * emojiBoost
		} else {
			scores[e] = emojiSeed
		}
	}
}

func normalizeScores(scores map[string]float64) {
	total := 0.0
	for _, v := range scores {
		total += v
	}
	if total <= 0 {
		return
	}
	for k, v := range scores {
		scores[k] = v / total
	}
}

// primaryEmotion breaks ties alphabetically.
func primaryEmotion(scores map[string]float64) string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestScore := EmotionNeutral, -1.0
	for _, k := range keys {
		if scores[k] > bestScore {
			best, bestScore = k, scores[k]
		}
	}
	return best
}

// Intensity grows with exclamation marks, shouting, strong words and emoji.
func Intensity(text string, sig models.EmojiSignal) float64 {
	base := 0.0
	if text != "" {
		exclamations := strings.Count(text, "!")
		upper, total := 0, 0
		for _, r := range text {
			total++
			if unicode.IsUpper(r) {
				upper++
			}
		}
		capsRatio := float64(upper) / float64(total)

		tokens := lowerWords(text)
		strong := 0
		for _, w := range strongWords {
			if tokens[w] > 0 {
				strong++
			}
		}
		base = math.Min(1, 0.2*float64(exclamations)+2*capsRatio+0.3*float64(strong))
	}

	emojiPart := 0.0
	if sig.HasEmojis {
		emojiPart = math.Min(0.3, 0.05*float64(sig.EmojiCount))
		if math.Abs(sig.Score) > 0.5 {
			emojiPart += 0.1
		}
	}
	return math.Min(1, base+emojiPart)
}

func lowerWords(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		counts[w]++
	}
	return counts
}
