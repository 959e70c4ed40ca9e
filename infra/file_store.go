package infra

import (
	"context"
	"fmt"

	"gin-boutique/libs"
)

const LocalImageURLPrefix = "/images"

func SetupFileStore(ctx context.Context, cfg *Config) (libs.IFileStore, error) {
	switch cfg.FileStore {
	case "", "local":
		return libs.NewLocalFileStore(cfg.UploadDir, LocalImageURLPrefix), nil
	case "minio":
		return libs.NewMinioFileStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	case "cloudinary":
		if cfg.CloudinaryURL == "" {
			return nil, fmt.Errorf("CLOUDINARY_URL is required for the cloudinary file store")
		}
		return libs.NewCloudinaryFileStore(cfg.CloudinaryURL)
	}
	return nil, fmt.Errorf("unknown FILE_STORE %q", cfg.FileStore)
}
