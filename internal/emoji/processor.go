package emoji

import (
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/reviewlens/internal/models"
)

// Analyze builds the emoji signal of text. Unmapped emoji are counted but
// belong to no class.
func (l *Lexicon) Analyze(text string) models.EmojiSignal {
	glyphs := Extract(text)
	if len(glyphs) == 0 {
		return models.EmojiSignal{}
	}

	var breakdown models.EmojiBreakdown
	for _, g := range glyphs {
		class, ok := l.Classify(g)
		if !ok {
			continue
		}
		switch class {
		case models.LabelPositive:
			breakdown.Positive++
		case models.LabelNegative:
			breakdown.Negative++
		case models.LabelNeutral:
			breakdown.Neutral++
		}
	}

	count := len(glyphs)
	return models.EmojiSignal{
		HasEmojis:     true,
		EmojiCount:    count,
		Breakdown:     breakdown,
		DominantClass: dominantClass(breakdown),
		Score:         float64(breakdown.Positive-breakdown.Negative) / float64(count),
		EmojisFound:   glyphs,
	}
}

// ties resolve positive, negative, neutral
func dominantClass(b models.EmojiBreakdown) string {
	if b.Positive == 0 && b.Negative == 0 && b.Neutral == 0 {
		return models.LabelNeutral
	}
	dominant, best := models.LabelPositive, b.Positive
	if b.Negative > best {
		dominant, best = models.LabelNegative, b.Negative
	}
	if b.Neutral > best {
		dominant = models.LabelNeutral
	}
	return dominant
}

// Remove strips every emoji from text and collapses the whitespace left behind.
func Remove(text string) string {
	return replace(text, func(string) string { return " " })
}

// ReplaceWithTokens swaps each emoji for a placeholder word tagged with its
// class, e.g. "positive_emoji", or plain "emoji" when the glyph is unmapped.
func (l *Lexicon) ReplaceWithTokens(text string) string {
	return replace(text, func(glyph string) string {
		if class, ok := l.Classify(glyph); ok {
			return " " + class + "_emoji "
		}
		return " emoji "
	})
}

func replace(text string, fn func(string) string) string {
	found := Find(text)
	if len(found) == 0 {
		return strings.Join(strings.Fields(text), " ")
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range found {
		b.WriteString(text[last:m.Start])
		b.WriteString(fn(m.Glyph))
		last = m.End
	}
	b.WriteString(text[last:])
	return strings.Join(strings.Fields(b.String()), " ")
}

// Contexts returns each emoji with up to window runes of text on either side.
func (l *Lexicon) Contexts(text string, window int) []models.EmojiContext {
	found := Find(text)
	contexts := make([]models.EmojiContext, 0, len(found))
	for _, m := range found {
		class, ok := l.Classify(m.Glyph)
		if !ok {
			class = "unknown"
		}
		contexts = append(contexts, models.EmojiContext{
			Emoji:         m.Glyph,
			Position:      m.Start,
			ContextBefore: strings.TrimSpace(lastRunes(text[:m.Start], window)),
			ContextAfter:  strings.TrimSpace(firstRunes(text[m.End:], window)),
			Sentiment:     class,
		})
	}
	return contexts
}

func lastRunes(s string, n int) string {
	i := len(s)
	for count := 0; i > 0 && count < n; count++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}

func firstRunes(s string, n int) string {
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
