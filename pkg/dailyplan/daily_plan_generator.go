package dailyplan

import (
	"time"

	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/entities"
)

// Generate builds the plan for the calendar date of now. It is pure given its
// inputs: the same catalog and date always produce the same plan.
//
// All picks share one RNG stream in the order breakfast, lunch, main,
// vegetable, soup, side. A role without candidates gets its default and
// consumes no draw.
func Generate(catalog []entities.Dish, now time.Time) domain.DailyPlanResponse {
	date := DateString(now)
	rng := NewRNG(SeedFromDate(date))

	breakfast := pickOrDefault(rng, catalog, RoleBreakfast)
	lunch := pickOrDefault(rng, catalog, RoleLunch)
	dinnerMain := pickOrDefault(rng, catalog, RoleMain)
	vegetable := pickOrDefault(rng, catalog, RoleVegetable)
	soup := pickOrDefault(rng, catalog, RoleSoup)

	plan := domain.DailyPlanResponse{
		DateInfo: domain.DateInfo{Date: date},
		Meals: domain.Meals{
			Breakfast: breakfast,
			Lunch:     lunch,
			Dinner: domain.Dinner{
				Main:      dinnerMain,
				Vegetable: vegetable,
				Soup:      soup,
				Rice:      Rice(),
			},
		},
	}

	if side, ok := pick(rng, Classify(catalog, RoleSide)); ok {
		plan.Meals.Dinner.Side = &side
	}

	plan.DateInfo.TotalCalories = TotalCalories(plan)
	return plan
}

// TotalCalories sums the calories of every dish present in the plan.
func TotalCalories(plan domain.DailyPlanResponse) float64 {
	var total float64
	for _, d := range plan.Dishes() {
		total += d.Nutrition.Calories
	}
	return total
}

func pickOrDefault(rng *RNG, catalog []entities.Dish, role Role) entities.Dish {
	if d, ok := pick(rng, Classify(catalog, role)); ok {
		return d
	}
	d, _ := DefaultDish(role)
	return d
}

// pick draws once from rng, and only when candidates is non-empty.
func pick(rng *RNG, candidates []entities.Dish) (entities.Dish, bool) {
	if len(candidates) == 0 {
		return entities.Dish{}, false
	}
	return candidates[rng.Index(len(candidates))], true
}
