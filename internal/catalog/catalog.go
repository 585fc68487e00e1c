// Package catalog holds the read-only lookup tables used during annotation:
// competitor brands per category and subcategory, aspect vocabularies and the
// comparison keywords that signal a competitor comparison.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Polarity says which side a comparison keyword favours.
type Polarity string

const (
	PolarityNeutral          Polarity = "neutral"
	PolarityCompetitorBetter Polarity = "competitor_better"
	PolarityCompetitorWorse  Polarity = "competitor_worse"
)

type ComparisonKeyword struct {
	Keyword  string   `yaml:"keyword"`
	Polarity Polarity `yaml:"polarity"`
}

// Catalog is loaded once at start up and never mutated afterwards, so a
// single pointer is shared by every concurrent annotation.
type Catalog struct {
	GenericCompetitors []string                       `yaml:"generic_competitors"`
	CompetitorBrands   map[string]map[string][]string `yaml:"competitor_brands"`
	AspectVocabularies map[string]map[string][]string `yaml:"aspect_vocabularies"`
	DefaultAspects     map[string][]string            `yaml:"default_aspects"`
	ComparisonKeywords []ComparisonKeyword            `yaml:"comparison_keywords"`
}

func Default() *Catalog {
	return &Catalog{
		GenericCompetitors: genericCompetitors,
		CompetitorBrands:   competitorBrands,
		AspectVocabularies: aspectVocabularies,
		DefaultAspects:     defaultAspects,
		ComparisonKeywords: comparisonKeywords,
	}
}

// LoadFile reads a YAML catalog. Sections missing from the file keep the
// built in defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := Default()
	if len(override.GenericCompetitors) > 0 {
		c.GenericCompetitors = override.GenericCompetitors
	}
	if len(override.CompetitorBrands) > 0 {
		c.CompetitorBrands = override.CompetitorBrands
	}
	if len(override.AspectVocabularies) > 0 {
		c.AspectVocabularies = override.AspectVocabularies
	}
	if len(override.DefaultAspects) > 0 {
		c.DefaultAspects = override.DefaultAspects
	}
	if len(override.ComparisonKeywords) > 0 {
		for _, kw := range override.ComparisonKeywords {
			switch kw.Polarity {
			case PolarityNeutral, PolarityCompetitorBetter, PolarityCompetitorWorse:
			default:
				return nil, fmt.Errorf("comparison keyword %q has unknown polarity %q", kw.Keyword, kw.Polarity)
			}
		}
		c.ComparisonKeywords = override.ComparisonKeywords
	}
	return c, nil
}

// Load returns the catalog at path, or the defaults when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("[Catalog] Loaded catalog override",
		slog.String("path", path),
		slog.Int("categories", len(c.CompetitorBrands)),
		slog.Int("comparison_keywords", len(c.ComparisonKeywords)))
	return c, nil
}

// CompetitorsFor resolves the competitor names relevant to a product: the
// generic competitors plus the subcategory list when it is known, or every
// subcategory list of the category otherwise. Names are de-duplicated case
// insensitively and sorted.
func (c *Catalog) CompetitorsFor(category, subcategory string) []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(list []string) {
		for _, name := range list {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, strings.TrimSpace(name))
		}
	}

	add(c.GenericCompetitors)
	if subcats, ok := lookup(c.CompetitorBrands, category); ok {
		if list, ok := lookup(subcats, subcategory); ok && subcategory != "" {
			add(list)
		} else {
			for _, key := range sortedKeys(subcats) {
				add(subcats[key])
			}
		}
	}

	sort.Strings(names)
	return names
}

// AspectsFor returns the aspect vocabulary of a category, falling back to the
// default vocabulary when the category is unknown.
func (c *Catalog) AspectsFor(category string) map[string][]string {
	if vocab, ok := lookup(c.AspectVocabularies, category); ok && len(vocab) > 0 {
		return vocab
	}
	return c.DefaultAspects
}

// lookup matches keys case insensitively so "electronics" resolves to
// "Electronics".
func lookup[V any](m map[string]V, key string) (V, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	want := strings.ToLower(strings.TrimSpace(key))
	for k, v := range m {
		if strings.ToLower(k) == want {
			return v, true
		}
	}
	var zero V
	return zero, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AspectKeywords merges the keywords of every vocabulary by aspect name.
func (c *Catalog) AspectKeywords() map[string][]string {
	merged := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	add := func(vocab map[string][]string) {
		for aspect, keywords := range vocab {
			if seen[aspect] == nil {
				seen[aspect] = make(map[string]struct{})
			}
			for _, kw := range keywords {
				if _, ok := seen[aspect][kw]; ok {
					continue
				}
				seen[aspect][kw] = struct{}{}
				merged[aspect] = append(merged[aspect], kw)
			}
		}
	}

	add(c.DefaultAspects)
	for _, category := range sortedKeys(c.AspectVocabularies) {
		add(c.AspectVocabularies[category])
	}
	return merged
}

// Brands lists every known brand and retailer once, sorted.
func (c *Catalog) Brands() []string {
	seen := make(map[string]struct{})
	var brands []string
	add := func(list []string) {
		for _, name := range list {
			key := strings.ToLower(name)
			if _, ok := seen[key]; ok || key == "" {
				continue
			}
			seen[key] = struct{}{}
			brands = append(brands, name)
		}
	}

	add(c.GenericCompetitors)
	for _, category := range sortedKeys(c.CompetitorBrands) {
		subcats := c.CompetitorBrands[category]
		for _, sub := range sortedKeys(subcats) {
			add(subcats[sub])
		}
	}
	sort.Strings(brands)
	return brands
}
