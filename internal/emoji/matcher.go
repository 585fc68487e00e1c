package emoji

import (
	"unicode/utf8"
)

const (
	zeroWidthJoiner     = '\u200d'
	variationSelector15 = '\ufe0e'
	variationSelector16 = '\ufe0f'
	combiningKeycap     = '\u20e3'
)

type runeRange struct {
	lo, hi rune
}

// emojiRanges is the fixed set of code point ranges treated as emoji.
var emojiRanges = []runeRange{
	{0x203C, 0x203C},
	{0x2049, 0x2049},
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23CF, 0x23CF},
	{0x23E9, 0x23F3},
	{0x23F8, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25AA, 0x25AB},
	{0x25B6, 0x25B6},
	{0x25C0, 0x25C0},
	{0x25FB, 0x25FE},
	{0x2600, 0x27BF}, // misc symbols, dingbats
	{0x2934, 0x2935},
	{0x2B05, 0x2B07},
	{0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50},
	{0x2B55, 0x2B55},
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x1F000, 0x1FAFF}, // pictographs, emoticons, transport, flags, supplemental
}

// Match is one emoji cluster found in a text. Start and End are byte offsets.
type Match struct {
	Glyph string
	Start int
	End   int
}

func isEmojiBase(r rune) bool {
	if isSkinTone(r) {
		return false
	}
	for _, rr := range emojiRanges {
		if r < rr.lo {
			return false
		}
		if r <= rr.hi {
			return true
		}
	}
	return false
}

func isSkinTone(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

func isModifier(r rune) bool {
	return r == variationSelector15 || r == variationSelector16 || r == combiningKeycap || isSkinTone(r)
}

// Find returns every emoji cluster in text in order of appearance. A base
// emoji absorbs trailing modifiers and ZWJ continuations, and two regional
// indicators form a single flag.
func Find(text string) []Match {
	var matches []Match
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isEmojiBase(r) {
			i += size
			continue
		}

		start := i
		end := i + size
		if isRegionalIndicator(r) {
			if next, nsize := utf8.DecodeRuneInString(text[end:]); isRegionalIndicator(next) {
				end += nsize
			}
		}

		for end < len(text) {
			next, nsize := utf8.DecodeRuneInString(text[end:])
			if isModifier(next) {
				end += nsize
				continue
			}
			if next == zeroWidthJoiner {
				joined, jsize := utf8.DecodeRuneInString(text[end+nsize:])
				if end+nsize < len(text) && isEmojiBase(joined) {
					end += nsize + jsize
					continue
				}
			}
			break
		}

		matches = append(matches, Match{Glyph: text[start:end], Start: start, End: end})
		i = end
	}
	return matches
}

// Extract returns the emoji glyphs of text in order.
func Extract(text string) []string {
	found := Find(text)
	if len(found) == 0 {
		return nil
	}
	glyphs := make([]string, 0, len(found))
	for _, m := range found {
		glyphs = append(glyphs, m.Glyph)
	}
	return glyphs
}
