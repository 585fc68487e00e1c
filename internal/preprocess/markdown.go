package preprocess

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern  = regexp.MustCompile(`(?i)\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern   = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
)

// RemoveLinks keeps the text of markdown links and drops bare URLs and
// e-mail addresses.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	input = urlPattern.ReplaceAllString(input, " ")
	return emailPattern.ReplaceAllString(input, " ")
}

// ConvertMarkdownToText renders markdown and strips the resulting HTML so
// only the prose remains.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(RemoveLinks(input)), blackfriday.WithNoExtensions())
	plain := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))
	return strings.Join(strings.Fields(plain), " ")
}
