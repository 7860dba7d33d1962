package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDailyPlanService struct {
	plan domain.DailyPlanResponse
}

func (f *fakeDailyPlanService) GetDailyPlan(context.Context) domain.DailyPlanResponse {
	return f.plan
}

func TestGetDailyPlanReturnsBarePlan(t *testing.T) {
	rice := entities.Dish{ID: "com_trang", Name: "Cơm trắng"}
	plan := domain.DailyPlanResponse{
		DateInfo: domain.DateInfo{Date: "1/1/2024", TotalCalories: 1500},
		Meals: domain.Meals{
			Breakfast: entities.Dish{ID: "b"},
			Lunch:     entities.Dish{ID: "l"},
			Dinner: domain.Dinner{
				Main:      entities.Dish{ID: "m"},
				Vegetable: entities.Dish{ID: "v"},
				Soup:      entities.Dish{ID: "s"},
				Rice:      rice,
			},
		},
	}

	app := fiber.New()
	h := NewDailyPlanHandler(&fakeDailyPlanService{plan: plan})
	app.Get("/plan", h.GetDailyPlan)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/plan", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var got domain.DailyPlanResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "1/1/2024", got.DateInfo.Date)
	assert.Equal(t, "com_trang", got.Meals.Dinner.Rice.ID)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "date_info")
	assert.Contains(t, raw, "meals")
	assert.NotContains(t, raw, "status")
}

func TestPing(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", NewDailyPlanHandler(&fakeDailyPlanService{}).Ping)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pong", body["message"])
}
