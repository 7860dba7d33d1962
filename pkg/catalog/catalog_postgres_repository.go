package catalog

import (
	"context"

	"Hom-Nay-An-Gi/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresCatalogRepository struct {
	db *gorm.DB
}

func NewPostgresCatalogRepository(db *gorm.DB) WritableCatalogRepository {
	return &postgresCatalogRepository{db: db}
}

// GetDishes returns the catalog ordered by id so picks stay reproducible
// across queries.
func (r *postgresCatalogRepository) GetDishes(ctx context.Context) ([]entities.Dish, error) {
	var dishes []entities.Dish
	if err := r.db.WithContext(ctx).Order("id asc").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

// SaveDishes replaces the table contents with dishes in one transaction, so
// readers never see a half-written catalog.
func (r *postgresCatalogRepository) SaveDishes(ctx context.Context, dishes []entities.Dish) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Dish{}).Error; err != nil {
			return err
		}
		if len(dishes) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(dishes, 100).Error
	})
}
