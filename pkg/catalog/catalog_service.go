package catalog

import (
	"context"

	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/entities"

	"github.com/gofiber/fiber/v2/log"
)

type (
	CatalogService interface {
		// LoadCatalog returns the full catalog, or an empty one if the source
		// cannot be read or parsed. Failures are logged, never returned.
		LoadCatalog(ctx context.Context) []entities.Dish
		CleanupByOrigin(ctx context.Context, keyword string) (domain.CleanupReport, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
	}
}

func (s *catalogService) LoadCatalog(ctx context.Context) []entities.Dish {
	dishes, err := s.catalogRepository.GetDishes(ctx)
	if err != nil {
		log.Errorf("error reading catalog: %v", err)
		return []entities.Dish{}
	}
	if dishes == nil {
		return []entities.Dish{}
	}
	return dishes
}

// CleanupByOrigin keeps only dishes whose origin mentions keyword and writes
// the result back in the wrapped format. Unlike LoadCatalog it surfaces read
// errors, since rewriting a catalog that failed to parse would wipe it.
func (s *catalogService) CleanupByOrigin(ctx context.Context, keyword string) (domain.CleanupReport, error) {
	writer, err := AsWriter(s.catalogRepository)
	if err != nil {
		return domain.CleanupReport{}, err
	}

	dishes, err := s.catalogRepository.GetDishes(ctx)
	if err != nil {
		return domain.CleanupReport{}, err
	}

	kept := FilterByOrigin(dishes, keyword)
	if err := writer.SaveDishes(ctx, kept); err != nil {
		return domain.CleanupReport{}, err
	}

	report := domain.CleanupReport{
		OriginalCount: len(dishes),
		NewCount:      len(kept),
		Removed:       len(dishes) - len(kept),
	}
	log.Infof("%s: %d -> %d dishes", domain.MessageCatalogCleaned, report.OriginalCount, report.NewCount)
	return report, nil
}
