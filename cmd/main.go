package main

import (
	"context"
	"flag"

	"Hom-Nay-An-Gi/cmd/config"
	"Hom-Nay-An-Gi/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := flag.String("config", utils.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	if err := utils.LoadConfig(*configPath); err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if err := utils.ValidateConfig(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	app, accessLog, err := config.NewApp(context.Background())
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}
	defer accessLog.Close()

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
