package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/entities"
)

type (
	// CatalogRepository reads the whole catalog from its storage. Every call
	// goes back to the source.
	CatalogRepository interface {
		GetDishes(ctx context.Context) ([]entities.Dish, error)
	}

	CatalogWriter interface {
		SaveDishes(ctx context.Context, dishes []entities.Dish) error
	}

	WritableCatalogRepository interface {
		CatalogRepository
		CatalogWriter
	}

	fileCatalogRepository struct {
		path string
	}
)

func NewFileCatalogRepository(path string) WritableCatalogRepository {
	return &fileCatalogRepository{path: path}
}

func (r *fileCatalogRepository) GetDishes(ctx context.Context) ([]entities.Dish, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}
	return DecodeCatalog(raw)
}

// SaveDishes replaces the catalog file atomically: readers see either the old
// file or the new one, never a partial write.
func (r *fileCatalogRepository) SaveDishes(ctx context.Context, dishes []entities.Dish) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeCatalog(dishes)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod temp catalog: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace catalog %s: %w", r.path, err)
	}
	return nil
}

// AsWriter returns repo as a CatalogWriter, or ErrCatalogNotWritable.
func AsWriter(repo CatalogRepository) (CatalogWriter, error) {
	w, ok := repo.(CatalogWriter)
	if !ok {
		return nil, domain.ErrCatalogNotWritable
	}
	return w, nil
}
