package domain

import "Hom-Nay-An-Gi/entities"

var (
	MessageSuccessGetDailyPlan = "daily plan generated successfully"
)

type (
	DailyPlanResponse struct {
		DateInfo DateInfo `json:"date_info"`
		Meals    Meals    `json:"meals"`
	}

	DateInfo struct {
		Date          string  `json:"date"`
		TotalCalories float64 `json:"total_calories"`
	}

	Meals struct {
		Breakfast entities.Dish `json:"breakfast"`
		Lunch     entities.Dish `json:"lunch"`
		Dinner    Dinner        `json:"dinner"`
	}

	Dinner struct {
		Main      entities.Dish  `json:"main"`
		Vegetable entities.Dish  `json:"vegetable"`
		Soup      entities.Dish  `json:"soup"`
		Rice      entities.Dish  `json:"rice"`
		Side      *entities.Dish `json:"side,omitempty"`
	}
)

// Dishes lists every dish present in the plan, side included only when set.
func (p DailyPlanResponse) Dishes() []entities.Dish {
	dishes := []entities.Dish{
		p.Meals.Breakfast,
		p.Meals.Lunch,
		p.Meals.Dinner.Main,
		p.Meals.Dinner.Vegetable,
		p.Meals.Dinner.Soup,
		p.Meals.Dinner.Rice,
	}
	if p.Meals.Dinner.Side != nil {
		dishes = append(dishes, *p.Meals.Dinner.Side)
	}
	return dishes
}
