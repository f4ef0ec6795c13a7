package catalog

import (
	"strings"

	"pondilore/models"

	"github.com/samber/lo"
)

// categoryUnions maps aggregate categories to the raw categories they
// expand to. Kept as a table so the union rule is a single testable
// artifact rather than scattered conditionals.
var categoryUnions = map[string][]string{
	models.CategorySpiritual: {models.CategorySpiritual, models.CategoryTemples, models.CategoryChurches},
	models.CategoryNature:    {models.CategoryNature, models.CategoryParks},
}

// PlacesByCategory returns every place matching the given category,
// case-insensitive, in catalog order. "all" and "places" return the whole
// catalog; aggregate categories expand through categoryUnions; anything
// unknown yields an empty slice, never an error.
func PlacesByCategory(category string) []models.Place {
	c := strings.ToLower(strings.TrimSpace(category))

	if c == "all" || c == "places" || c == "" {
		out := make([]models.Place, len(places))
		copy(out, places)
		return out
	}

	wanted := categoryUnions[c]
	if wanted == nil {
		wanted = []string{c}
	}

	matched := lo.Filter(places, func(p models.Place, _ int) bool {
		return lo.Contains(wanted, p.Category)
	})
	// catalog order is already preserved and ids are unique per record,
	// so the union needs no extra dedup pass
	if matched == nil {
		matched = []models.Place{}
	}
	return matched
}

// PlaceByID looks up a place by its stable id. The second return is false
// when the id is unknown.
func PlaceByID(id string) (models.Place, bool) {
	for _, p := range places {
		if p.PlaceID == id {
			return p, true
		}
	}
	return models.Place{}, false
}

// Categories lists every raw category present in the catalog, in first-seen
// order.
func Categories() []string {
	return lo.Uniq(lo.Map(places, func(p models.Place, _ int) string {
		return p.Category
	}))
}
