package dailyplan

import (
	"strings"

	"Hom-Nay-An-Gi/entities"
)

type Role string

const (
	RoleBreakfast Role = "breakfast"
	RoleLunch     Role = "lunch"
	RoleMain      Role = "main"
	RoleVegetable Role = "vegetable"
	RoleSoup      Role = "soup"
	RoleSide      Role = "side"
)

const (
	lunchMinCalories       = 300
	relaxedMainMinCalories = 350
	dinnerTag              = "dinner"
)

type roleRule struct {
	// tags holds the canonical tag followed by its synonyms.
	tags []string
	// gate, when set, must also hold for a tag match to count.
	gate func(entities.Dish) bool
	// fallback runs only when tag matching finds nothing.
	fallback func([]entities.Dish) []entities.Dish
}

var roleRules = map[Role]roleRule{
	RoleBreakfast: {tags: []string{"breakfast", "sang"}},
	RoleLunch: {
		tags: []string{"lunch", "trua", "main"},
		gate: func(d entities.Dish) bool { return d.Nutrition.Calories > lunchMinCalories },
	},
	RoleMain: {
		tags:     []string{"main", "man"},
		fallback: MatchRelaxedMain,
	},
	RoleVegetable: {
		tags: []string{"vegetable", "rau"},
		fallback: func(catalog []entities.Dish) []entities.Dish {
			return MatchNamePrefix(catalog, "rau", "nộm")
		},
	},
	RoleSoup: {
		tags: []string{"soup", "canh"},
		fallback: func(catalog []entities.Dish) []entities.Dish {
			return MatchNamePrefix(catalog, "canh")
		},
	},
	RoleSide: {tags: []string{"side", "kem"}},
}

// Classify returns the dishes eligible for role, in catalog order. Roles are
// independent of each other, so one dish may be returned for several roles.
func Classify(catalog []entities.Dish, role Role) []entities.Dish {
	rule, ok := roleRules[role]
	if !ok {
		return nil
	}

	candidates := MatchTags(catalog, rule.tags...)
	if rule.gate != nil {
		candidates = filter(candidates, rule.gate)
	}
	if len(candidates) == 0 && rule.fallback != nil {
		candidates = rule.fallback(catalog)
	}
	return candidates
}

// MatchTags returns the dishes carrying any of tags, under either tagging scheme.
func MatchTags(catalog []entities.Dish, tags ...string) []entities.Dish {
	return filter(catalog, func(d entities.Dish) bool {
		for _, tag := range tags {
			if d.HasTag(tag) {
				return true
			}
		}
		return false
	})
}

// MatchNamePrefix returns the dishes whose lower-cased name starts with any of prefixes.
func MatchNamePrefix(catalog []entities.Dish, prefixes ...string) []entities.Dish {
	return filter(catalog, func(d entities.Dish) bool {
		name := strings.ToLower(d.Name)
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	})
}

// MatchRelaxedMain accepts generic dinner dishes heavy enough to carry a meal.
func MatchRelaxedMain(catalog []entities.Dish) []entities.Dish {
	return filter(catalog, func(d entities.Dish) bool {
		return d.HasTag(dinnerTag) && d.Nutrition.Calories > relaxedMainMinCalories
	})
}

func filter(dishes []entities.Dish, keep func(entities.Dish) bool) []entities.Dish {
	var out []entities.Dish
	for _, d := range dishes {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
