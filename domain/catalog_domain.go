package domain

import "errors"

const (
	CatalogSourceFile     = "file"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"

	// CatalogDatasetKey is the wrapper key some catalog files use around the dish list.
	CatalogDatasetKey = "dataset"
)

var (
	MessageCatalogEmpty   = "catalog is empty or invalid, serving default dishes"
	MessageCatalogCleaned = "catalog cleanup complete"

	ErrCatalogFormat        = errors.New("unknown catalog format")
	ErrCatalogSourceUnknown = errors.New("unknown catalog source")
	ErrCatalogNotWritable   = errors.New("catalog source is read-only")
)

type CleanupReport struct {
	OriginalCount int `json:"original_count"`
	NewCount      int `json:"new_count"`
	Removed       int `json:"removed"`
}
