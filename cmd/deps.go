package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/shohaib/portfolio-cms/internal/config"
	"github.com/shohaib/portfolio-cms/internal/model"
	"github.com/shohaib/portfolio-cms/internal/repository/file"
	"github.com/shohaib/portfolio-cms/internal/repository/postgres"
	"github.com/shohaib/portfolio-cms/internal/storage/local"
	storage "github.com/shohaib/portfolio-cms/internal/storage/minio"
)

// contentBackend is a ContentStore that can also be bulk loaded.
type contentBackend interface {
	model.ContentStore
	Import(ctx context.Context, snap model.Snapshot) error
}

func openContentStore(ctx context.Context, cfg *config.Config) (contentBackend, func() error, error) {
	switch cfg.Content.Backend {
	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return postgres.NewContentRepository(db), db.Close, nil
	default:
		store, err := file.NewStore(cfg.Content.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open content file: %w", err)
		}
		return store, func() error { return nil }, nil
	}
}

// uploadBackend is where uploads go and, for the local backend, how they
// are served back.
type uploadBackend struct {
	storage model.Storage
	checker model.ReferenceChecker
	prefix  string
	handler http.Handler
}

func openUploadStorage(ctx context.Context, cfg *config.Config) (uploadBackend, error) {
	switch cfg.Upload.Backend {
	case config.UploadMinio:
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return uploadBackend{}, fmt.Errorf("failed to create minio client: %w", err)
		}
		client, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
		if err != nil {
			return uploadBackend{}, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		return uploadBackend{storage: client}, nil
	default:
		disk, err := local.NewDisk(cfg.Upload.Dir, cfg.Upload.PublicPrefix)
		if err != nil {
			return uploadBackend{}, fmt.Errorf("failed to initialize upload directory: %w", err)
		}
		return uploadBackend{
			storage: disk,
			checker: disk,
			prefix:  disk.PublicPrefix(),
			handler: disk.Handler(),
		}, nil
	}
}
