package emoji

import (
	"testing"

	"github.com/spacesedan/reviewlens/internal/models"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	lex := DefaultLexicon()
	tests := []struct {
		name      string
		text      string
		count     int
		breakdown models.EmojiBreakdown
		dominant  string
		score     float64
	}{
		{name: "no emoji", text: "plain text review", count: 0},
		{name: "empty", text: "", count: 0},
		{
			name: "two positive", text: "Great battery 😊😊", count: 2,
			breakdown: models.EmojiBreakdown{Positive: 2}, dominant: models.LabelPositive, score: 1,
		},
		{
			name: "mixed", text: "hmm 👍 👎 👎 🤔", count: 4,
			breakdown: models.EmojiBreakdown{Positive: 1, Negative: 2, Neutral: 1}, dominant: models.LabelNegative, score: -0.25,
		},
		{
			name: "variation selector", text: "love it ❤️", count: 1,
			breakdown: models.EmojiBreakdown{Positive: 1}, dominant: models.LabelPositive, score: 1,
		},
		{
			name: "unmapped counted without class", text: "shipped 🚚", count: 1,
			dominant: models.LabelNeutral, score: 0,
		},
		{
			name: "skin tone folds into base", text: "👍🏽", count: 1,
			breakdown: models.EmojiBreakdown{Positive: 1}, dominant: models.LabelPositive, score: 1,
		},
		{
			name: "flag is one emoji", text: "made in 🇯🇵", count: 1,
			dominant: models.LabelNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sig := lex.Analyze(tt.text)
			if sig.EmojiCount != tt.count {
				t.Fatalf("EmojiCount=%d want %d", sig.EmojiCount, tt.count)
			}
			if sig.HasEmojis != (tt.count > 0) {
				t.Fatalf("HasEmojis=%v", sig.HasEmojis)
			}
			if tt.count == 0 {
				if sig.Score != 0 || sig.DominantClass != "" {
					t.Fatalf("zero signal expected, got %+v", sig)
				}
				return
			}
			if sig.Breakdown != tt.breakdown {
				t.Fatalf("Breakdown=%+v want %+v", sig.Breakdown, tt.breakdown)
			}
			if sig.DominantClass != tt.dominant {
				t.Fatalf("DominantClass=%q want %q", sig.DominantClass, tt.dominant)
			}
			if sig.Score != tt.score {
				t.Fatalf("Score=%v want %v", sig.Score, tt.score)
			}
			if sig.Score < -1 || sig.Score > 1 {
				t.Fatalf("Score out of range: %v", sig.Score)
			}
		})
	}
}

func TestReplaceWithTokens(t *testing.T) {
	t.Parallel()

	lex := DefaultLexicon()
	got := lex.ReplaceWithTokens("Love it😍 but 💔 and 🚚")
	want := "Love it positive_emoji but negative_emoji and emoji"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if again := lex.ReplaceWithTokens(got); again != got {
		t.Fatalf("not idempotent: %q", again)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	if got := Remove("😀 nice   phone 👍👍"); got != "nice phone" {
		t.Fatalf("got %q", got)
	}
	if got := Remove("😀😀"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestContexts(t *testing.T) {
	t.Parallel()

	ctxs := DefaultLexicon().Contexts("the battery is great 😊 would buy", 6)
	if len(ctxs) != 1 {
		t.Fatalf("len=%d", len(ctxs))
	}
	c := ctxs[0]
	if c.Sentiment != models.LabelPositive {
		t.Fatalf("Sentiment=%q", c.Sentiment)
	}
	if c.ContextBefore != "great" || c.ContextAfter != "would" {
		t.Fatalf("before=%q after=%q", c.ContextBefore, c.ContextAfter)
	}
}
