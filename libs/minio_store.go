package libs

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioFileStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewMinioFileStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (IFileStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		log.Printf("Created MinIO bucket: %s", bucket)
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	log.Printf("Setup MinIO file store: %s/%s", endpoint, bucket)
	return &MinioFileStore{
		client:  client,
		bucket:  bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}, nil
}

func (s *MinioFileStore) Save(ctx context.Context, upload *Upload) (string, error) {
	f, err := upload.Header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	objectName := "products/" + uuid.NewString() + upload.Extension
	_, err = s.client.PutObject(ctx, s.bucket, objectName, f, upload.Header.Size,
		minio.PutObjectOptions{ContentType: upload.ContentType})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.baseURL + "/" + objectName, nil
}

func (s *MinioFileStore) Delete(ctx context.Context, filePath string) error {
	objectName := strings.TrimPrefix(filePath, s.baseURL+"/")
	if objectName == filePath || objectName == "" {
		return ErrInvalidFilePath
	}
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
