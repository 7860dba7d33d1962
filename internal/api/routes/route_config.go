package routes

import (
	"Hom-Nay-An-Gi/internal/api/handlers"
	"Hom-Nay-An-Gi/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

const DailyPlanPath = "/api/hom-nay-an-gi"

type Config struct {
	App              *fiber.App
	DailyPlanHandler handlers.DailyPlanHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.DailyPlan()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", c.DailyPlanHandler.Ping)
}

func (c *Config) DailyPlan() {
	c.App.Get(DailyPlanPath, c.DailyPlanHandler.GetDailyPlan)
}
