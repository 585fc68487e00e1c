package preprocess

import (
	"regexp"
	"strings"
)

// irregular forms first, the suffix rules below cover the rest
var contractionReplacer = strings.NewReplacer(
	"won't", "will not",
	"can't", "cannot",
	"shan't", "shall not",
	"ain't", "am not",
	"let's", "let us",
	"it's", "it is",
	"that's", "that is",
	"there's", "there is",
	"what's", "what is",
	"he's", "he is",
	"she's", "she is",
	"who's", "who is",
	"y'all", "you all",
)

var contractionSuffixes = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(\w)n't\b`), "$1 not"},
	{regexp.MustCompile(`(\w)'re\b`), "$1 are"},
	{regexp.MustCompile(`(\w)'ve\b`), "$1 have"},
	{regexp.MustCompile(`(\w)'ll\b`), "$1 will"},
	{regexp.MustCompile(`(\w)'d\b`), "$1 would"},
	{regexp.MustCompile(`\bi'm\b`), "i am"},
}

// ExpandContractions expects lower-cased input with straight apostrophes.
func ExpandContractions(text string) string {
	text = contractionReplacer.Replace(text)
	for _, s := range contractionSuffixes {
		text = s.pattern.ReplaceAllString(text, s.repl)
	}
	return text
}
