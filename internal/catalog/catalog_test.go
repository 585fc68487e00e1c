package catalog

import (
	"slices"
	"testing"
)

func TestCompetitorsFor(t *testing.T) {
	t.Parallel()

	c := Default()
	tests := []struct {
		name        string
		category    string
		subcategory string
		contains    []string
		excludes    []string
	}{
		{
			name: "subcategory known", category: "Electronics", subcategory: "Smartphones",
			contains: []string{"Samsung", "Apple", "Amazon", "Best Buy"},
			excludes: []string{"Canon", "Dell"},
		},
		{
			name: "category only unions subcategories", category: "Electronics",
			contains: []string{"Samsung", "Canon", "Dell", "Bose", "Walmart"},
		},
		{
			name: "unknown subcategory unions subcategories", category: "electronics", subcategory: "Drones",
			contains: []string{"Canon", "Samsung"},
		},
		{
			name: "unknown category is generic only", category: "Garden",
			contains: []string{"Amazon", "Costco"},
			excludes: []string{"Samsung", "Nike"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.CompetitorsFor(tt.category, tt.subcategory)
			for _, name := range tt.contains {
				if !slices.Contains(got, name) {
					t.Fatalf("missing %q in %v", name, got)
				}
			}
			for _, name := range tt.excludes {
				if slices.Contains(got, name) {
					t.Fatalf("unexpected %q in %v", name, got)
				}
			}
			if !slices.IsSorted(got) {
				t.Fatalf("not sorted: %v", got)
			}
		})
	}
}

func TestCompetitorsForDedupes(t *testing.T) {
	t.Parallel()

	got := Default().CompetitorsFor("Electronics", "")
	count := 0
	for _, name := range got {
		if name == "Apple" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Apple appears %d times", count)
	}
}

func TestAspectsFor(t *testing.T) {
	t.Parallel()

	c := Default()
	if _, ok := c.AspectsFor("Electronics")["battery"]; !ok {
		t.Fatal("electronics vocabulary missing battery")
	}
	if _, ok := c.AspectsFor("Home & Kitchen")["assembly"]; !ok {
		t.Fatal("home vocabulary missing assembly")
	}
	if _, ok := c.AspectsFor("Toys")["delivery"]; !ok {
		t.Fatal("unknown category should use default vocabulary")
	}
}

func TestParseOverride(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(`
generic_competitors: [MegaMart]
comparison_keywords:
  - keyword: outclassed by
    polarity: competitor_better
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !slices.Equal(c.GenericCompetitors, []string{"MegaMart"}) {
		t.Fatalf("GenericCompetitors=%v", c.GenericCompetitors)
	}
	if len(c.ComparisonKeywords) != 1 || c.ComparisonKeywords[0].Polarity != PolarityCompetitorBetter {
		t.Fatalf("ComparisonKeywords=%v", c.ComparisonKeywords)
	}
	if len(c.CompetitorBrands) == 0 {
		t.Fatal("brands should keep defaults")
	}

	if _, err := Parse([]byte("comparison_keywords: [{keyword: x, polarity: sideways}]")); err == nil {
		t.Fatal("expected unknown polarity error")
	}
}

func TestAspectKeywordsMergesVocabularies(t *testing.T) {
	t.Parallel()

	kw := Default().AspectKeywords()
	for _, aspect := range []string{"battery", "screen", "quality", "price"} {
		if len(kw[aspect]) == 0 {
			t.Errorf("AspectKeywords()[%q] is empty", aspect)
		}
	}
}
