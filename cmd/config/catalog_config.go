package config

import (
	"context"
	"fmt"

	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/internal/utils"
	"Hom-Nay-An-Gi/pkg/catalog"
)

// NewCatalogRepository builds the repository named by CATALOG_SOURCE.
func NewCatalogRepository(ctx context.Context) (catalog.CatalogRepository, error) {
	switch source := utils.GetConfig("CATALOG_SOURCE"); source {
	case domain.CatalogSourceFile:
		return catalog.NewFileCatalogRepository(utils.GetConfig("CATALOG_PATH")), nil
	case domain.CatalogSourceS3:
		client, err := catalog.NewS3Client(ctx, catalog.S3Config{
			Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
			Key:       utils.GetConfig("CATALOG_OBJECT_KEY"),
			Region:    utils.GetConfig("AWS_S3_REGION"),
			AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
			SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
			Endpoint:  utils.GetConfig("AWS_S3_ENDPOINT"),
		})
		if err != nil {
			return nil, err
		}
		return catalog.NewS3CatalogRepository(client, utils.GetConfig("AWS_S3_BUCKET"), utils.GetConfig("CATALOG_OBJECT_KEY")), nil
	case domain.CatalogSourcePostgres:
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		return catalog.NewPostgresCatalogRepository(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrCatalogSourceUnknown, source)
	}
}
