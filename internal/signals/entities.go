package signals

import (
	"context"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

// ProseEntityExtractor combines prose's named entity recognizer with a
// dictionary of known brands.
type ProseEntityExtractor struct {
	brands []string
}

func NewProseEntityExtractor(brands []string) *ProseEntityExtractor {
	return &ProseEntityExtractor{brands: brands}
}

func (p *ProseEntityExtractor) Entities(ctx context.Context, text string) (models.Entities, error) {
	if err := ctx.Err(); err != nil {
		return models.Entities{}, err
	}

	found := map[string]map[string]struct{}{
		"brands": {}, "locations": {}, "persons": {}, "misc": {},
	}

	if strings.TrimSpace(text) != "" {
		doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
		if err != nil {
			return models.Entities{}, err
		}
		for _, ent := range doc.Entities() {
			name := strings.TrimSpace(ent.Text)
			if name == "" {
				continue
			}
			switch ent.Label {
			case "PERSON":
				found["persons"][name] = struct{}{}
			case "GPE", "LOC":
				found["locations"][name] = struct{}{}
			case "ORG", "PRODUCT":
				found["brands"][name] = struct{}{}
			default:
				found["misc"][name] = struct{}{}
			}
		}
	}

	for _, brand := range p.brands {
		if utils.ContainsWord(text, brand) {
			found["brands"][brand] = struct{}{}
			// prose often tags brands as people
			delete(found["persons"], brand)
		}
	}

	return models.Entities{
		Brands:        sortedSet(found["brands"]),
		Locations:     sortedSet(found["locations"]),
		Persons:       sortedSet(found["persons"]),
		Miscellaneous: sortedSet(found["misc"]),
	}, nil
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
