package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFindWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, phrase string
		want         int
	}{
		{"I switched from Samsung", "switched from", 2},
		{"the algorithm is smart", "LG", -1},
		{"LG makes TVs", "lg", 0},
		{"bought at Crate & Barrel.", "Crate & Barrel", 10},
		{"Black+Decker drill", "Black+Decker", 0},
		{"", "vs", -1},
		{"anything", "", -1},
	}
	for _, tt := range tests {
		if got, _ := FindWord(tt.text, tt.phrase); got != tt.want {
			t.Errorf("FindWord(%q, %q) = %d, want %d", tt.text, tt.phrase, got, tt.want)
		}
	}
}

func TestWindowRespectsRuneBoundaries(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("é", 80) + "Samsung" + strings.Repeat("ü", 80)
	start, end := FindWord(text, "Samsung")
	if start < 0 {
		t.Fatal("Samsung not found")
	}
	for _, radius := range []int{3, 99, 100, 101} {
		got := Window(text, start, end, radius)
		if !strings.Contains(got, "Samsung") {
			t.Errorf("radius %d lost the match: %q", radius, got)
		}
		if !utf8.ValidString(got) {
			t.Errorf("radius %d split a rune: %q", radius, got)
		}
	}
}
