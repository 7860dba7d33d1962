package catalog

import (
	"strings"

	"Hom-Nay-An-Gi/entities"
)

// VietnameseOriginKeyword matches origins like "viet_nam" or "viet_bac".
const VietnameseOriginKeyword = "viet"

// FilterByOrigin keeps dishes whose origin contains keyword, ignoring case.
// Dishes without an origin are dropped.
func FilterByOrigin(dishes []entities.Dish, keyword string) []entities.Dish {
	keyword = strings.ToLower(keyword)
	kept := make([]entities.Dish, 0, len(dishes))
	for _, d := range dishes {
		if d.Origin == "" {
			continue
		}
		if strings.Contains(strings.ToLower(d.Origin), keyword) {
			kept = append(kept, d)
		}
	}
	return kept
}
