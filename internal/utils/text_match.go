package utils

import (
	"regexp"
	"sync"
	"unicode/utf8"
)

var wordPatterns sync.Map

// wordPattern matches phrase case-insensitively when it is not glued to a
// letter or digit on either side.
func wordPattern(phrase string) *regexp.Regexp {
	if p, ok := wordPatterns.Load(phrase); ok {
		return p.(*regexp.Regexp)
	}
	p := regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(` + regexp.QuoteMeta(phrase) + `)(?:[^\p{L}\p{N}]|$)`)
	actual, _ := wordPatterns.LoadOrStore(phrase, p)
	return actual.(*regexp.Regexp)
}

// FindWord returns the byte offsets of the first whole-word occurrence of
// phrase in text, or -1, -1.
func FindWord(text, phrase string) (int, int) {
	if phrase == "" {
		return -1, -1
	}
	loc := wordPattern(phrase).FindStringSubmatchIndex(text)
	if loc == nil {
		return -1, -1
	}
	return loc[2], loc[3]
}

func ContainsWord(text, phrase string) bool {
	start, _ := FindWord(text, phrase)
	return start >= 0
}

// Window cuts radius bytes either side of [start, end), widened to rune
// boundaries.
func Window(text string, start, end, radius int) string {
	from := max(0, start-radius)
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	to := min(len(text), end+radius)
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return text[from:to]
}
