package libs

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const cloudinaryFolder = "products"

var cloudinaryVersion = regexp.MustCompile(`^v\d+/`)

type CloudinaryFileStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryFileStore(cloudinaryURL string) (IFileStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL fail: %w", err)
	}
	return &CloudinaryFileStore{cld: cld}, nil
}

func (s *CloudinaryFileStore) Save(ctx context.Context, upload *Upload) (string, error) {
	f, err := upload.Header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	resp, err := s.cld.Upload.Upload(ctx, f, uploader.UploadParams{
		PublicID:     uuid.NewString(),
		Folder:       cloudinaryFolder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", fmt.Errorf("cloudinary returned no URL")
}

func (s *CloudinaryFileStore) Delete(ctx context.Context, fileURL string) error {
	publicID, err := cloudinaryPublicID(fileURL)
	if err != nil {
		return err
	}
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}

// cloudinaryPublicID turns
// https://res.cloudinary.com/demo/image/upload/v1712/products/abc.png into products/abc.
func cloudinaryPublicID(fileURL string) (string, error) {
	_, rest, found := strings.Cut(fileURL, "/upload/")
	if !found || rest == "" {
		return "", ErrInvalidFilePath
	}
	rest = cloudinaryVersion.ReplaceAllString(rest, "")
	return strings.TrimSuffix(rest, path.Ext(rest)), nil
}
