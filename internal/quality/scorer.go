// Package quality scores how informative and how authentic a review looks.
package quality

import (
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
)

const fakeThreshold = 0.3

// Assess scores emoji-free review text. sig carries the emoji that were
// stripped from it.
func Assess(text string, sig models.EmojiSignal) models.QualityAssessment {
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return Zero(sig.EmojiCount)
	}

	qf := QualityFactors(text, wordCount, sig.EmojiCount)
	af := AuthenticityFactors(text, wordCount, sig.EmojiCount)
	authenticity := AuthenticityScore(af)

	return models.QualityAssessment{
		QualityScore:          QualityScore(qf),
		AuthenticityScore:     authenticity,
		IsLikelyFake:          authenticity < fakeThreshold,
		EmojiUsageAppropriate: qf.EmojiToWordRatio < appropriateRatio,
		QualityFactors:        qf,
		AuthenticityFactors:   af,
	}
}

// Zero is the assessment of a review with nothing to score.
func Zero(emojiCount int) models.QualityAssessment {
	ratio := EmojiRatio(emojiCount, 0)
	return models.QualityAssessment{
		IsLikelyFake:          true,
		EmojiUsageAppropriate: ratio < appropriateRatio,
		QualityFactors: models.QualityFactors{
			EmojiCount:       emojiCount,
			EmojiScore:       EmojiScore(emojiCount),
			ExcessiveEmojis:  emojiCount > maxReasonableEmojis,
			EmojiToWordRatio: ratio,
		},
	}
}

func QualityFactors(text string, wordCount, emojiCount int) models.QualityFactors {
	generic := GenericPhraseCount(text)
	return models.QualityFactors{
		WordCount:          wordCount,
		HasMinLength:       wordCount >= minLengthWords,
		LengthScore:        LengthScore(wordCount),
		SpecificityScore:   SpecificityScore(SpecificTokens(text)),
		GenericPhraseCount: generic,
		OriginalityScore:   OriginalityScore(generic),
		EmojiCount:         emojiCount,
		ExcessiveEmojis:    emojiCount > maxReasonableEmojis,
		EmojiToWordRatio:   EmojiRatio(emojiCount, wordCount),
		EmojiScore:         EmojiScore(emojiCount),
	}
}

func QualityScore(f models.QualityFactors) float64 {
	return clamp01(0.3*f.LengthScore + 0.3*f.SpecificityScore + 0.2*f.OriginalityScore + 0.2*f.EmojiScore)
}

func AuthenticityFactors(text string, wordCount, emojiCount int) models.AuthenticityFactors {
	return models.AuthenticityFactors{
		HasProsAndCons:       IsBalanced(text),
		PersonalExperience:   HasPersonalExperience(text),
		NaturalLanguage:      HasNaturalLanguage(text),
		ReasonableEmojiUsage: ReasonableEmojiUsage(emojiCount, wordCount),
	}
}

// AuthenticityScore is the share of authenticity heuristics that hold.
func AuthenticityScore(f models.AuthenticityFactors) float64 {
	checks := []bool{f.HasProsAndCons, f.PersonalExperience, f.NaturalLanguage, f.ReasonableEmojiUsage}
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	return float64(passed) / float64(len(checks))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
