package config

import (
	"fmt"

	"Hom-Nay-An-Gi/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
		dbTimeZone(),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Errorf("database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}

func dbTimeZone() string {
	if tz := utils.GetConfig("TIMEZONE"); tz != "" {
		return tz
	}
	return "UTC"
}
