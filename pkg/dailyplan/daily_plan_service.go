package dailyplan

import (
	"context"
	"time"

	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/pkg/catalog"

	"github.com/gofiber/fiber/v2/log"
)

type (
	DailyPlanService interface {
		GetDailyPlan(ctx context.Context) domain.DailyPlanResponse
	}

	dailyPlanService struct {
		catalogService catalog.CatalogService
		location       *time.Location
		now            func() time.Time
	}

	Option func(*dailyPlanService)
)

// WithLocation sets the calendar used to decide which day it is.
func WithLocation(loc *time.Location) Option {
	return func(s *dailyPlanService) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *dailyPlanService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewDailyPlanService(catalogService catalog.CatalogService, opts ...Option) DailyPlanService {
	s := &dailyPlanService{
		catalogService: catalogService,
		location:       time.Local,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *dailyPlanService) GetDailyPlan(ctx context.Context) domain.DailyPlanResponse {
	dishes := s.catalogService.LoadCatalog(ctx)
	if len(dishes) == 0 {
		log.Warn(domain.MessageCatalogEmpty)
	}

	plan := Generate(dishes, s.now().In(s.location))
	log.Debugf("%s for %s: %d catalog dishes, %.0f kcal", domain.MessageSuccessGetDailyPlan, plan.DateInfo.Date, len(dishes), plan.DateInfo.TotalCalories)
	return plan
}
