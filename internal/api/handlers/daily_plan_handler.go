package handlers

import (
	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/pkg/dailyplan"

	"github.com/gofiber/fiber/v2"
)

type (
	DailyPlanHandler interface {
		GetDailyPlan(c *fiber.Ctx) error
		Ping(c *fiber.Ctx) error
	}

	dailyPlanHandler struct {
		dailyPlanService dailyplan.DailyPlanService
	}
)

func NewDailyPlanHandler(dailyPlanService dailyplan.DailyPlanService) DailyPlanHandler {
	return &dailyPlanHandler{
		dailyPlanService: dailyPlanService,
	}
}

// GetDailyPlan always answers 200. The body is the bare plan, which is the
// shape the popup client reads.
func (h *dailyPlanHandler) GetDailyPlan(c *fiber.Ctx) error {
	plan := h.dailyPlanService.GetDailyPlan(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(plan)
}

func (h *dailyPlanHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": domain.MessagePong})
}
