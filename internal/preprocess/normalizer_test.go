package preprocess

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and collapses", "  Great   PRODUCT  ", "great product"},
		{"expands contractions", "I don't think it's worth it, we've tried", "i do not think it is worth it, we have tried"},
		{"curly apostrophe", "It won’t charge", "it will not charge"},
		{"strips emoji", "Love it 😍🔥 really", "love it really"},
		{"strips urls and emails", "See https://example.com/x or mail me@example.com now", "see or mail now"},
		{"keeps link text", "Check [the manual](https://example.com/manual) first", "check the manual first"},
		{"strips emphasis", "This is **really** _good_", "this is really good"},
		{"double escaped entity", "a &amp;amp; b", "a & b"},
		{"leading ordered marker", "**2.** Battery dies fast", "battery dies fast"},
		{"quoted ordered marker", "\"1. Great phone\" said my friend", "great phone said my friend"},
		{"uppercase www", "Visit WWW.Example.com now", "visit now"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Great battery life, but screen is disappointing 😊😊",
		"I switched from Samsung because this camera is so much better!!!",
		"Don't buy it. **Broke** after 2 days 😡 https://example.com",
		"",
		"👍",
		"Worth the money & fast delivery; 5 stars 🌟",
		"\"1. Great phone\" said my friend",
		"**2.** Battery dies fast",
		"a &amp;amp; b",
		"Visit WWW.Example.com now",
		"3. 4. Two markers then text",
	}

	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(first.Cleaned)
		if second.Cleaned != first.Cleaned {
			t.Errorf("Cleaned not idempotent for %q: %q then %q", in, first.Cleaned, second.Cleaned)
		}
		again := Normalize(first.EmojiReplaced)
		if again.EmojiReplaced != first.EmojiReplaced {
			t.Errorf("EmojiReplaced not idempotent for %q: %q then %q", in, first.EmojiReplaced, again.EmojiReplaced)
		}
	}
}

func TestNormalizeEmojiReplaced(t *testing.T) {
	t.Parallel()

	got := Normalize("Great battery 😊 but meh 😡").EmojiReplaced
	want := "Great battery positive_emoji but meh negative_emoji"
	if got != want {
		t.Errorf("EmojiReplaced = %q, want %q", got, want)
	}
}

func TestTokenizeDropsStopWordsAndShortTokens(t *testing.T) {
	t.Parallel()

	got := Tokenize("it is an ok screen and the batteries")
	for _, tok := range got {
		if len([]rune(tok)) < 3 {
			t.Errorf("short token %q kept", tok)
		}
		if IsStopWord(tok) {
			t.Errorf("stop word %q kept", tok)
		}
	}
	if len(got) == 0 || got[0] != "screen" {
		t.Errorf("Tokenize() = %v, want screen first", got)
	}
}

func TestSurfaceFeatures(t *testing.T) {
	t.Parallel()

	n := Normalize("Great camera, terrible battery. Bought 2!")
	f := n.Features
	if !f.HasNumbers || !f.HasUppercase || !f.HasPunctuation {
		t.Errorf("flags = %+v, want numbers, uppercase and punctuation", f)
	}
	if f.PositiveIndicators != 1 || f.NegativeIndicators != 1 {
		t.Errorf("indicators = %d/%d, want 1/1", f.PositiveIndicators, f.NegativeIndicators)
	}
	if f.WordCount != len(n.Tokens) {
		t.Errorf("WordCount = %d, want %d", f.WordCount, len(n.Tokens))
	}
}

func TestSentences(t *testing.T) {
	t.Parallel()

	got := Sentences("The screen is bright. The battery died fast! Would I buy again?")
	want := []string{"The screen is bright.", "The battery died fast!", "Would I buy again?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %q, want %q", got, want)
	}
	if Sentences("   ") != nil {
		t.Error("Sentences of blank text should be nil")
	}
}

func TestExpandContractions(t *testing.T) {
	t.Parallel()

	got := ExpandContractions("they're sure you'll see i'm right, we'd agree")
	want := "they are sure you will see i am right, we would agree"
	if got != want {
		t.Errorf("ExpandContractions() = %q, want %q", got, want)
	}
}
