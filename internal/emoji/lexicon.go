package emoji

import (
	"strings"

	"github.com/spacesedan/reviewlens/internal/models"
)

var positiveEmoji = []string{
	"😀", "😃", "😄", "😁", "😆", "😅", "😂", "🤣",
	"😊", "😇", "🙂", "🙃", "😉", "😌", "😍", "🥰",
	"😘", "😗", "😙", "😚", "😋", "😛", "😜", "🤪",
	"😝", "🤗", "🤩", "🥳", "👍", "👌", "✌", "🤟",
	"🤘", "💪", "👏", "🙌", "❤", "🧡", "💛", "💚",
	"💙", "💜", "🖤", "🤍", "🤎", "💕", "💖", "✨",
	"⭐", "🌟", "💫", "🎉", "🎊", "🎈", "🎁", "🏆",
}

var negativeEmoji = []string{
	"😞", "😔", "😟", "😕", "🙁", "☹", "😣", "😖",
	"😫", "😩", "🥺", "😢", "😭", "😤", "😠", "😡",
	"🤬", "😰", "😥", "😓", "🤯", "😱", "😨", "👎",
	"💔", "🚫", "❌", "⛔", "🛑",
}

var neutralEmoji = []string{
	"😐", "😑", "😶", "🙄", "🤔", "🤨", "😏", "😒",
	"😬", "🤐", "😷", "🤒", "🤕", "😵", "🥴", "😪",
	"😴", "💤", "🤷", "🤦",
}

// Lexicon maps emoji glyphs to a sentiment class. It is built once and only
// read afterwards, so one instance can be shared by every annotation.
type Lexicon struct {
	classes map[string]string
}

func NewLexicon(positive, negative, neutral []string) *Lexicon {
	l := &Lexicon{classes: make(map[string]string, len(positive)+len(negative)+len(neutral))}
	for _, e := range positive {
		l.classes[lookupKey(e)] = models.LabelPositive
	}
	for _, e := range negative {
		l.classes[lookupKey(e)] = models.LabelNegative
	}
	for _, e := range neutral {
		l.classes[lookupKey(e)] = models.LabelNeutral
	}
	return l
}

var defaultLexicon = NewLexicon(positiveEmoji, negativeEmoji, neutralEmoji)

func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// Classify returns the sentiment class for a glyph. Presentation selectors
// and skin tones are ignored, and a ZWJ sequence falls back to its base emoji.
func (l *Lexicon) Classify(glyph string) (string, bool) {
	key := lookupKey(glyph)
	if class, ok := l.classes[key]; ok {
		return class, true
	}
	for _, r := range key {
		class, ok := l.classes[string(r)]
		return class, ok
	}
	return "", false
}

func lookupKey(glyph string) string {
	return strings.Map(func(r rune) rune {
		if r == variationSelector16 || r == variationSelector15 || isSkinTone(r) {
			return -1
		}
		return r
	}, glyph)
}
