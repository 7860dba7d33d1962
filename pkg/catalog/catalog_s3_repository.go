package catalog

import (
	"context"
	"fmt"
	"io"

	"Hom-Nay-An-Gi/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type (
	S3Config struct {
		Bucket    string
		Key       string
		Region    string
		AccessKey string
		SecretKey string
		// Endpoint overrides the AWS endpoint, e.g. for R2 or MinIO.
		Endpoint string
	}

	// ObjectGetter is the subset of *s3.Client the catalog needs.
	ObjectGetter interface {
		GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	}

	s3CatalogRepository struct {
		client ObjectGetter
		bucket string
		key    string
	}
)

func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3CatalogRepository(client ObjectGetter, bucket, key string) CatalogRepository {
	return &s3CatalogRepository{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

func (r *s3CatalogRepository) GetDishes(ctx context.Context) ([]entities.Dish, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get catalog s3://%s/%s: %w", r.bucket, r.key, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog s3://%s/%s: %w", r.bucket, r.key, err)
	}
	return DecodeCatalog(raw)
}
