// Package preprocess turns raw review text into the cleaned, tokenized and
// emoji-tagged forms the annotation stages work on.
package preprocess

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/spacesedan/reviewlens/internal/emoji"
	"github.com/spacesedan/reviewlens/internal/models"
	"golang.org/x/text/unicode/norm"
)

// Normalized is the output of a single normalization pass.
type Normalized struct {
	Cleaned       string
	Tokens        []string
	EmojiReplaced string
	Features      models.TextFeatures
}

const minTokenRunes = 3

var (
	positiveIndicators = toSet("good", "great", "excellent", "amazing", "love", "perfect", "best", "awesome", "fantastic")
	negativeIndicators = toSet("bad", "terrible", "awful", "hate", "worst", "horrible", "poor", "disappointing", "useless")
)

// listMarker matches what markdown would read as ordered list markers at the
// start of cleaned text.
var listMarker = regexp.MustCompile(`^(?:[0-9]+\.(?:\s+|$))+`)

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'", "“", `"`, "”", `"`,
)

type Normalizer struct {
	lexicon *emoji.Lexicon
}

func NewNormalizer(lexicon *emoji.Lexicon) *Normalizer {
	if lexicon == nil {
		lexicon = emoji.DefaultLexicon()
	}
	return &Normalizer{lexicon: lexicon}
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize runs the default normalizer over text.
func Normalize(text string) Normalized {
	return defaultNormalizer.Normalize(text)
}

func (n *Normalizer) Normalize(text string) Normalized {
	text = norm.NFC.String(text)
	cleaned := Clean(text)
	tokens := Tokenize(cleaned)

	return Normalized{
		Cleaned:       cleaned,
		Tokens:        tokens,
		EmojiReplaced: n.lexicon.ReplaceWithTokens(text),
		Features:      surfaceFeatures(text, tokens),
	}
}

// Clean lower-cases text and removes markdown, links, e-mail addresses and
// emoji. Contractions are expanded and whitespace collapsed.
func Clean(text string) string {
	text = norm.NFC.String(text)
	text = emoji.Remove(text)
	text = ConvertMarkdownToText(text)
	text = strings.ToLower(quoteReplacer.Replace(text))
	text = ExpandContractions(text)
	text = unescapeAll(text)
	text = strings.Join(strings.Fields(strings.Map(keepRune, text)), " ")
	return listMarker.ReplaceAllString(text, "")
}

// unescapeAll decodes HTML entities until none are left, so "&amp;amp;"
// becomes "&".
func unescapeAll(text string) string {
	for range 8 {
		next := html.UnescapeString(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

// keepRune drops markdown residue and symbols, keeping sentence punctuation.
func keepRune(r rune) rune {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
		return r
	case unicode.IsSpace(r):
		return ' '
	}
	switch r {
	case '.', ',', '!', '?', '\'', '%', '$', ':', ';', '&':
		return r
	}
	return ' '
}

// Tokenize returns the lemmas of the words in cleaned text, skipping stop
// words and anything shorter than three runes.
func Tokenize(cleaned string) []string {
	words := strings.FieldsFunc(cleaned, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < minTokenRunes || IsStopWord(w) {
			continue
		}
		lemma := Lemma(w)
		if len([]rune(lemma)) < minTokenRunes || IsStopWord(lemma) {
			continue
		}
		tokens = append(tokens, lemma)
	}
	return tokens
}

func surfaceFeatures(text string, tokens []string) models.TextFeatures {
	f := models.TextFeatures{
		Length:    len([]rune(text)),
		WordCount: len(tokens),
	}

	if len(tokens) > 0 {
		total := 0
		for _, t := range tokens {
			total += len([]rune(t))
		}
		f.AvgWordLength = float64(total) / float64(len(tokens))
	}

	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			f.HasNumbers = true
		case unicode.IsUpper(r):
			f.HasUppercase = true
		case unicode.IsPunct(r):
			f.HasPunctuation = true
		}
	}

	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if _, ok := positiveIndicators[w]; ok {
			f.PositiveIndicators++
		}
		if _, ok := negativeIndicators[w]; ok {
			f.NegativeIndicators++
		}
	}
	return f
}
