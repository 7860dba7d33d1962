package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"Hom-Nay-An-Gi/cmd/config"
	"Hom-Nay-An-Gi/internal/utils"
	"Hom-Nay-An-Gi/pkg/catalog"

	"github.com/gofiber/fiber/v2/log"
)

// cleanup rewrites the configured catalog keeping only Vietnamese dishes.
func main() {
	configPath := flag.String("config", utils.DefaultConfigPath, "path to the YAML config file")
	keyword := flag.String("origin", catalog.VietnameseOriginKeyword, "keep dishes whose origin contains this keyword")
	flag.Parse()

	if err := utils.LoadConfig(*configPath); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx := context.Background()
	repo, err := config.NewCatalogRepository(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening catalog: %v\n", err)
		os.Exit(1)
	}

	report, err := catalog.NewCatalogService(repo).CleanupByOrigin(ctx, *keyword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error cleaning data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Cleanup complete.")
	fmt.Printf("Original count: %d\n", report.OriginalCount)
	fmt.Printf("New count: %d\n", report.NewCount)
	fmt.Printf("Removed: %d items\n", report.Removed)
}
