package services

import (
	"strings"

	"github.com/catloaf567/boilergains/models"
)

// FilterPool applies dietary filters to a catalog snapshot and returns the
// eligible pool. Catalog order is preserved; an empty pool is a valid
// outcome, not an error.
func FilterPool(catalog []models.FoodItem, vegan bool, allergen string, excluded []string) []models.FoodItem {
	allergen = strings.ToLower(strings.TrimSpace(allergen))
	terms := make([]string, 0, len(excluded))
	for _, e := range excluded {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			terms = append(terms, e)
		}
	}

	out := make([]models.FoodItem, 0, len(catalog))
	for _, item := range catalog {
		if vegan && !item.Vegan {
			continue
		}
		if allergen != "" && strings.Contains(strings.ToLower(item.Allergens), allergen) {
			continue
		}
		if matchesAny(item.Name, terms) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesAny(name string, terms []string) bool {
	name = strings.ToLower(name)
	for _, t := range terms {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}
