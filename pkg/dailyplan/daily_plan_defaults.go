package dailyplan

import "Hom-Nay-An-Gi/entities"

const (
	defaultReason  = "Món ăn gợi ý mặc định"
	defaultOrigin  = "viet_nam"
	defaultPortion = "medium"
	defaultContext = "default_generated"
)

func defaultDish(id, name string, meal []string, calories float64, reason, origin string) entities.Dish {
	if reason == "" {
		reason = defaultReason
	}
	if origin == "" {
		origin = defaultOrigin
	}
	return entities.Dish{
		ID:          id,
		Name:        name,
		Meal:        meal,
		Nutrition:   entities.Nutrition{Calories: calories},
		ContextTags: []string{defaultContext},
		Portion:     defaultPortion,
		Reason:      reason,
		Origin:      origin,
	}
}

// DefaultDish returns the fixed dish served when role has no candidates.
// Side has no default.
func DefaultDish(role Role) (entities.Dish, bool) {
	switch role {
	case RoleBreakfast:
		return defaultDish("def_bf_1", "Bánh mì trứng (Default)", []string{"breakfast"}, 350, "Bữa sáng nhanh gọn", "viet_nam"), true
	case RoleLunch:
		return defaultDish("def_lunch_1", "Bún chả (Default)", []string{"lunch"}, 600, "Đặc sản Hà Nội cho bữa trưa", "viet_bac"), true
	case RoleMain:
		return defaultDish("def_din_main_1", "Thịt rang cháy cạnh (Default)", []string{"main"}, 500, "Món mặn đưa cơm", "viet_bac"), true
	case RoleVegetable:
		return defaultDish("def_din_veg_1", "Rau muống luộc (Default)", []string{"vegetable"}, 50, "Rau xanh thanh mát", "viet_nam"), true
	case RoleSoup:
		return defaultDish("def_din_soup_1", "Nước rau luộc dầm sấu (Default)", []string{"soup"}, 20, "Canh chua giải nhiệt", "viet_bac"), true
	default:
		return entities.Dish{}, false
	}
}

// Rice is the constant staple served with every dinner.
func Rice() entities.Dish {
	return entities.Dish{
		ID:            "com_trang",
		Name:          "Cơm trắng",
		Meal:          []string{"staple"},
		Nutrition:     entities.Nutrition{Calories: 200, Protein: 4, Fat: 0.5, Carbs: 45},
		NutritionTags: []string{"carb_source"},
		Portion:       "bowl",
		Reason:        "Ăn kèm các món mặn",
		Origin:        "viet_nam",
	}
}
