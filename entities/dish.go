package entities

import (
	"bytes"
	"encoding/json"
)

type Dish struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name"`
	Meal          MealTags  `gorm:"serializer:json" json:"meal,omitempty"`
	Type          string    `json:"type,omitempty"` // legacy single-value tag
	Nutrition     Nutrition `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	NutritionTags []string  `gorm:"serializer:json" json:"nutrition_tags,omitempty"`
	ContextTags   []string  `gorm:"serializer:json" json:"context_tags,omitempty"`
	Portion       string    `json:"portion,omitempty"`
	Reason        string    `json:"reason"`
	Origin        string    `json:"origin,omitempty"`
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// MealTags is the multi-valued "meal" field. A nil value means the field was
// absent or held something other than a list; an empty non-nil value means
// the catalog explicitly listed no tags.
type MealTags []string

func (m *MealTags) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	list, ok := raw.([]any)
	if !ok {
		*m = nil
		return nil
	}

	tags := make(MealTags, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	*m = tags
	return nil
}

// Tags returns the normalized role tags of the dish. The "meal" list wins
// whenever it is present, even when empty; the legacy "type" field is only
// consulted without it.
func (d Dish) Tags() []string {
	if d.Meal != nil {
		return d.Meal
	}
	if d.Type != "" {
		return []string{d.Type}
	}
	return nil
}

func (d Dish) HasTag(tag string) bool {
	for _, t := range d.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}
