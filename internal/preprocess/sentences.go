package preprocess

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

var sentenceBoundary = regexp.MustCompile(`[^.!?\n]+[.!?]*`)

// Sentences splits text into trimmed, non-empty sentences.
func Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return splitSentences(text)
	}

	var out []string
	for _, s := range doc.Sentences() {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return splitSentences(text)
	}
	return out
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceBoundary.FindAllString(text, -1) {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
