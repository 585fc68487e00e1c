package quality

import (
	"math"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/spacesedan/reviewlens/internal/preprocess"
	"gonum.org/v1/gonum/stat"
)

const (
	lengthTarget           = 50
	minLengthWords         = 10
	specificTarget         = 10
	genericPenaltySpan     = 3
	maxReasonableEmojis    = 10
	maxEmojiRatio          = 0.5
	appropriateRatio       = 0.3
	minSentenceVariance    = 5
	minVocabularyDiversity = 0.5
)

var genericPhrases = []string{
	"great product", "good quality", "fast delivery",
	"highly recommend", "five stars", "worth the money",
}

var (
	balancePositive = wordSet("good", "great", "love", "excellent", "pro", "pros", "advantage")
	balanceNegative = wordSet("bad", "poor", "hate", "terrible", "con", "cons", "disadvantage", "but", "however")
	firstPerson     = wordSet("i", "my", "me", "we", "our")
	usageVerbs      = wordSet("bought", "purchased", "used", "tried", "tested")
)

// proper nouns and cardinal numbers
var specificTags = map[string]struct{}{"NNP": {}, "NNPS": {}, "CD": {}}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// words splits text on anything that is not a letter, digit or apostrophe
// and lower-cases the pieces.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func containsAny(tokens []string, set map[string]struct{}) bool {
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func LengthScore(wordCount int) float64 {
	return math.Min(1, float64(wordCount)/lengthTarget)
}

// SpecificTokens counts numbers and proper nouns.
func SpecificTokens(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return 0
	}

	n := 0
	for _, tok := range doc.Tokens() {
		if _, ok := specificTags[tok.Tag]; ok {
			n++
		}
	}
	return n
}

func SpecificityScore(specific int) float64 {
	return math.Min(1, float64(specific)/specificTarget)
}

func GenericPhraseCount(text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			n++
		}
	}
	return n
}

func OriginalityScore(generic int) float64 {
	return math.Max(0, 1-float64(generic)/genericPenaltySpan)
}

func EmojiScore(emojiCount int) float64 {
	if emojiCount > maxReasonableEmojis {
		return 0
	}
	return 1
}

func EmojiRatio(emojiCount, wordCount int) float64 {
	return float64(emojiCount) / float64(max(wordCount, 1))
}

// IsBalanced reports whether the review weighs good points against bad ones.
func IsBalanced(text string) bool {
	tokens := words(text)
	return containsAny(tokens, balancePositive) && containsAny(tokens, balanceNegative)
}

// HasPersonalExperience looks for a first person pronoun together with a
// purchase or usage verb.
func HasPersonalExperience(text string) bool {
	tokens := words(text)
	return containsAny(tokens, firstPerson) && containsAny(tokens, usageVerbs)
}

// HasNaturalLanguage expects sentences of varying length and a varied
// vocabulary.
func HasNaturalLanguage(text string) bool {
	sentences := preprocess.Sentences(text)
	if len(sentences) == 0 {
		return false
	}

	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
	}
	if stat.PopVariance(lengths, nil) <= minSentenceVariance {
		return false
	}
	return VocabularyDiversity(text) > minVocabularyDiversity
}

// VocabularyDiversity is the share of distinct alphabetic words.
func VocabularyDiversity(text string) float64 {
	unique := make(map[string]struct{})
	total := 0
	for _, w := range words(text) {
		if !isAlpha(w) {
			continue
		}
		unique[w] = struct{}{}
		total++
	}
	if total == 0 {
		return 0
	}
	return float64(len(unique)) / float64(total)
}

func isAlpha(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}

func ReasonableEmojiUsage(emojiCount, wordCount int) bool {
	return EmojiRatio(emojiCount, wordCount) < maxEmojiRatio && emojiCount <= maxReasonableEmojis
}
