package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"Hom-Nay-An-Gi/internal/api/handlers"
	"Hom-Nay-An-Gi/internal/api/presenters"
	"Hom-Nay-An-Gi/internal/api/routes"
	"Hom-Nay-An-Gi/internal/middleware"
	"Hom-Nay-An-Gi/internal/utils"
	"Hom-Nay-An-Gi/pkg/catalog"
	"Hom-Nay-An-Gi/pkg/dailyplan"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// NewApp wires the fiber app from the loaded configuration. The returned
// closer flushes the access log.
func NewApp(ctx context.Context) (*fiber.App, io.Closer, error) {
	utils.InitValidator()
	log.SetLevel(ParseLogLevel(utils.GetConfig("LOG_LEVEL")))

	app := fiber.New(fiber.Config{
		AppName:      "hom-nay-an-gi",
		ErrorHandler: presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("ALLOWED_ORIGINS"))

	// setting up logging and limiter
	logPath := utils.GetConfig("LOG_PATH")
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, err
	}

	location, err := loadLocation(utils.GetConfig("TIMEZONE"))
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	app.Use(middlewares.RequestIDMiddleware())
	app.Use(middlewares.LoggerMiddleware(file, utils.GetConfig("TIMEZONE")))
	app.Use(middlewares.LimiterMiddleware(utils.GetConfigInt("RATE_LIMIT_MAX")))

	// Repository
	catalogRepository, err := NewCatalogRepository(ctx)
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	// Service
	catalogService := catalog.NewCatalogService(catalogRepository)
	dailyPlanService := dailyplan.NewDailyPlanService(catalogService, dailyplan.WithLocation(location))

	// Handler
	dailyPlanHandler := handlers.NewDailyPlanHandler(dailyPlanService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		DailyPlanHandler: dailyPlanHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()

	log.Infof("serving catalog from %s source", utils.GetConfig("CATALOG_SOURCE"))
	return app, file, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// ParseLogLevel maps a LOG_LEVEL value to a fiber log level, defaulting to info.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
