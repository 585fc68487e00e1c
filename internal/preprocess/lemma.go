package preprocess

import (
	"log/slog"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

var (
	lemmatizer     *golem.Lemmatizer
	lemmatizerOnce sync.Once
)

func getLemmatizer() *golem.Lemmatizer {
	lemmatizerOnce.Do(func() {
		l, err := golem.New(en.New())
		if err != nil {
			slog.Warn("[Preprocess] Failed to load lemmatizer, tokens will not be lemmatized",
				slog.String("error", err.Error()))
			return
		}
		lemmatizer = l
	})
	return lemmatizer
}

// Lemma returns the dictionary form of a lower-cased word.
func Lemma(word string) string {
	l := getLemmatizer()
	if l == nil {
		return word
	}
	return l.Lemma(word)
}
