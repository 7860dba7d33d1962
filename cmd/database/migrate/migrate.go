package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"Hom-Nay-An-Gi/cmd/config"
	"Hom-Nay-An-Gi/entities"
	"Hom-Nay-An-Gi/internal/utils"
	"Hom-Nay-An-Gi/pkg/catalog"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func main() {
	configPath := flag.String("config", utils.DefaultConfigPath, "path to the YAML config file")
	seed := flag.String("seed", "", "catalog JSON file to import after migrating")
	flag.Parse()

	if err := utils.LoadConfig(*configPath); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		os.Exit(1)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("error migrating dish database: %v", err)
	}
	if *seed != "" {
		if err := Seed(context.Background(), db, *seed); err != nil {
			log.Fatalf("error seeding dishes: %v", err)
		}
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Dish{}); err != nil {
		return err
	}
	fmt.Println("Database migration complete")
	return nil
}

// Seed replaces the dishes table with the catalog stored in path.
func Seed(ctx context.Context, db *gorm.DB, path string) error {
	dishes, err := catalog.NewFileCatalogRepository(path).GetDishes(ctx)
	if err != nil {
		return err
	}
	if err := catalog.NewPostgresCatalogRepository(db).SaveDishes(ctx, dishes); err != nil {
		return err
	}
	fmt.Printf("Seeded %d dishes from %s\n", len(dishes), path)
	return nil
}
