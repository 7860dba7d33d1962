package dailyplan

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"Hom-Nay-An-Gi/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newYear2024 = time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)

func fullCatalog() []entities.Dish {
	return []entities.Dish{
		dish("b0", "Xôi xéo", 420, "breakfast"),
		dish("b1", "Bánh cuốn", 330, "breakfast"),
		dish("b2", "Phở gà", 380, "sang"),
		dish("l0", "Cơm tấm", 650, "lunch"),
		dish("l1", "Bún bò Huế", 550, "trua"),
		dish("m0", "Cá kho tộ", 300, "man"),
		dish("m1", "Thịt kho trứng", 450, "man"),
		dish("m2", "Gà rang gừng", 380, "man"),
		dish("m3", "Tôm rim", 280, "man"),
		dish("v0", "Rau muống xào tỏi", 90, "vegetable"),
		dish("v1", "Cải luộc", 40, "rau"),
		dish("s0", "Canh chua cá", 120, "soup"),
		dish("s1", "Canh cua", 110, "canh"),
		dish("s2", "Canh bí", 60, "soup"),
		dish("k0", "Dưa muối", 20, "side"),
		dish("k1", "Chuối", 90, "kem"),
	}
}

func withoutRole(catalog []entities.Dish, role Role) []entities.Dish {
	drop := map[string]bool{}
	for _, d := range Classify(catalog, role) {
		drop[d.ID] = true
	}
	var out []entities.Dish
	for _, d := range catalog {
		if !drop[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

func TestGeneratePinnedSelection(t *testing.T) {
	// Draws for 1/1/2024: .665 .120 .886 .906 .314 .345
	plan := Generate(fullCatalog(), newYear2024)

	assert.Equal(t, "1/1/2024", plan.DateInfo.Date)
	assert.Equal(t, "b1", plan.Meals.Breakfast.ID)
	assert.Equal(t, "l0", plan.Meals.Lunch.ID)
	assert.Equal(t, "m3", plan.Meals.Dinner.Main.ID)
	assert.Equal(t, "v1", plan.Meals.Dinner.Vegetable.ID)
	assert.Equal(t, "s0", plan.Meals.Dinner.Soup.ID)
	assert.Equal(t, "com_trang", plan.Meals.Dinner.Rice.ID)
	require.NotNil(t, plan.Meals.Dinner.Side)
	assert.Equal(t, "k0", plan.Meals.Dinner.Side.ID)
	assert.Equal(t, 330.0+650+280+40+120+200+20, plan.DateInfo.TotalCalories)
}

func TestGenerateDeterministic(t *testing.T) {
	catalog := fullCatalog()
	morning := time.Date(2025, time.March, 8, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, time.March, 8, 23, 59, 0, 0, time.UTC)

	a, err := json.Marshal(Generate(catalog, morning))
	require.NoError(t, err)
	b, err := json.Marshal(Generate(catalog, morning))
	require.NoError(t, err)
	c, err := json.Marshal(Generate(catalog, night))
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Equal(t, string(a), string(c))
}

func TestGenerateDateSensitivity(t *testing.T) {
	var catalog []entities.Dish
	for i := 0; i < 20; i++ {
		catalog = append(catalog, dish(fmt.Sprintf("b%d", i), fmt.Sprintf("Bữa sáng %d", i), 350, "breakfast"))
	}

	first := Generate(catalog, newYear2024)
	second := Generate(catalog, newYear2024.AddDate(0, 0, 1))

	assert.NotEqual(t, SeedFromDate(first.DateInfo.Date), SeedFromDate(second.DateInfo.Date))
	assert.NotEqual(t, first.Meals.Breakfast.ID, second.Meals.Breakfast.ID)
}

func TestGenerateFallbackConsumesNoDraw(t *testing.T) {
	catalog := withoutRole(fullCatalog(), RoleBreakfast)
	plan := Generate(catalog, newYear2024)

	want, _ := DefaultDish(RoleBreakfast)
	assert.Equal(t, want, plan.Meals.Breakfast)

	// Replay the stream with the breakfast draw skipped.
	rng := NewRNG(SeedFromDate("1/1/2024"))
	lunch := Classify(catalog, RoleLunch)
	mains := Classify(catalog, RoleMain)
	vegs := Classify(catalog, RoleVegetable)
	soups := Classify(catalog, RoleSoup)
	sides := Classify(catalog, RoleSide)

	assert.Equal(t, lunch[rng.Index(len(lunch))].ID, plan.Meals.Lunch.ID)
	assert.Equal(t, mains[rng.Index(len(mains))].ID, plan.Meals.Dinner.Main.ID)
	assert.Equal(t, vegs[rng.Index(len(vegs))].ID, plan.Meals.Dinner.Vegetable.ID)
	assert.Equal(t, soups[rng.Index(len(soups))].ID, plan.Meals.Dinner.Soup.ID)
	require.NotNil(t, plan.Meals.Dinner.Side)
	assert.Equal(t, sides[rng.Index(len(sides))].ID, plan.Meals.Dinner.Side.ID)

	// .665*2, .120*4, .886*2, .906*3, .314*2
	assert.Equal(t, "l1", plan.Meals.Lunch.ID)
	assert.Equal(t, "m0", plan.Meals.Dinner.Main.ID)
	assert.Equal(t, "v1", plan.Meals.Dinner.Vegetable.ID)
	assert.Equal(t, "s2", plan.Meals.Dinner.Soup.ID)
	assert.Equal(t, "k0", plan.Meals.Dinner.Side.ID)
}

func TestGenerateFallbackKeepsOtherRoles(t *testing.T) {
	full := Generate(fullCatalog(), newYear2024)
	noSoup := Generate(withoutRole(fullCatalog(), RoleSoup), newYear2024)

	want, _ := DefaultDish(RoleSoup)
	assert.Equal(t, want, noSoup.Meals.Dinner.Soup)

	assert.Equal(t, full.Meals.Breakfast, noSoup.Meals.Breakfast)
	assert.Equal(t, full.Meals.Lunch, noSoup.Meals.Lunch)
	assert.Equal(t, full.Meals.Dinner.Main, noSoup.Meals.Dinner.Main)
	assert.Equal(t, full.Meals.Dinner.Vegetable, noSoup.Meals.Dinner.Vegetable)
	// soup's draw is skipped, so side takes the draw soup would have used
	require.NotNil(t, noSoup.Meals.Dinner.Side)
	assert.Equal(t, "k0", noSoup.Meals.Dinner.Side.ID)
}

func TestGenerateSideOmitted(t *testing.T) {
	plan := Generate(withoutRole(fullCatalog(), RoleSide), newYear2024)
	assert.Nil(t, plan.Meals.Dinner.Side)

	raw, err := json.Marshal(plan)
	require.NoError(t, err)

	var decoded struct {
		Meals struct {
			Dinner map[string]json.RawMessage `json:"dinner"`
		} `json:"meals"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	dinner := decoded.Meals.Dinner
	assert.NotContains(t, dinner, "side")
	assert.Contains(t, dinner, "rice")
}

func TestGenerateLunchGate(t *testing.T) {
	catalog := []entities.Dish{
		dish("snack", "Bánh flan", 180, "lunch"),
		dish("roll", "Gỏi cuốn", 300, "trua"),
	}
	plan := Generate(catalog, newYear2024)

	want, _ := DefaultDish(RoleLunch)
	assert.Equal(t, want, plan.Meals.Lunch)
}

func TestGenerateRelaxedMainBeforeDefault(t *testing.T) {
	catalog := []entities.Dish{dish("lau", "Lẩu gà lá é", 720, "dinner")}
	plan := Generate(catalog, newYear2024)

	assert.Equal(t, "lau", plan.Meals.Dinner.Main.ID)
	assert.Equal(t, "def_bf_1", plan.Meals.Breakfast.ID)
}

func TestGenerateSingleBreakfastExample(t *testing.T) {
	catalog := []entities.Dish{
		{ID: "a", Name: "Phở bò", Meal: entities.MealTags{"breakfast"}, Nutrition: entities.Nutrition{Calories: 400}},
	}
	plan := Generate(catalog, newYear2024)

	assert.Equal(t, "Phở bò", plan.Meals.Breakfast.Name)
	assert.Equal(t, "Bún chả (Default)", plan.Meals.Lunch.Name)
	assert.Equal(t, "Thịt rang cháy cạnh (Default)", plan.Meals.Dinner.Main.Name)
	assert.Equal(t, "Rau muống luộc (Default)", plan.Meals.Dinner.Vegetable.Name)
	assert.Equal(t, "Nước rau luộc dầm sấu (Default)", plan.Meals.Dinner.Soup.Name)
	assert.Equal(t, "Cơm trắng", plan.Meals.Dinner.Rice.Name)
	assert.Equal(t, 200.0, plan.Meals.Dinner.Rice.Nutrition.Calories)
	assert.Nil(t, plan.Meals.Dinner.Side)
	assert.Equal(t, 400.0+600+500+50+20+200, plan.DateInfo.TotalCalories)
}

func TestGenerateEmptyCatalog(t *testing.T) {
	plan := Generate(nil, newYear2024)

	for _, d := range plan.Dishes()[:5] {
		assert.Contains(t, d.ContextTags, "default_generated")
		assert.Equal(t, "medium", d.Portion)
	}
	assert.Equal(t, 350.0+600+500+50+20+200, plan.DateInfo.TotalCalories)
}

func TestGenerateCalorieConsistency(t *testing.T) {
	catalogs := map[string][]entities.Dish{
		"full":    fullCatalog(),
		"no side": withoutRole(fullCatalog(), RoleSide),
		"empty":   nil,
		"sparse":  {dish("x", "Canh rau ngót", 45), dish("y", "Mực xào", 410, "dinner")},
	}

	for name, catalog := range catalogs {
		t.Run(name, func(t *testing.T) {
			day := newYear2024
			for i := 0; i < 60; i++ {
				plan := Generate(catalog, day)
				var sum float64
				for _, d := range plan.Dishes() {
					sum += d.Nutrition.Calories
				}
				require.Equal(t, sum, plan.DateInfo.TotalCalories, plan.DateInfo.Date)
				day = day.AddDate(0, 0, 1)
			}
		})
	}
}

func TestDefaultDishReturnsFreshCopies(t *testing.T) {
	a, ok := DefaultDish(RoleVegetable)
	require.True(t, ok)
	a.ContextTags[0] = "mutated"
	a.Meal[0] = "mutated"

	b, _ := DefaultDish(RoleVegetable)
	assert.Equal(t, []string{"default_generated"}, b.ContextTags)
	assert.Equal(t, []string{"vegetable"}, b.Tags())

	_, ok = DefaultDish(RoleSide)
	assert.False(t, ok)
}
