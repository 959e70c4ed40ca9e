package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidFilePath = errors.New("invalid file path")

type IFileStore interface {
	// Save stores the upload and returns the path saved on the product.
	Save(ctx context.Context, upload *Upload) (string, error)
	Delete(ctx context.Context, path string) error
}

// DeleteQuietly removes a stored file and only logs failures.
func DeleteQuietly(ctx context.Context, store IFileStore, filePath string) {
	if filePath == "" {
		return
	}
	if err := store.Delete(ctx, filePath); err != nil {
		log.Printf("Delete file %q error: %v", filePath, err)
	}
}

type LocalFileStore struct {
	dir       string
	urlPrefix string
}

func NewLocalFileStore(dir string, urlPrefix string) IFileStore {
	return &LocalFileStore{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

func (s *LocalFileStore) Save(ctx context.Context, upload *Upload) (string, error) {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := upload.Header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + upload.Extension
	if err := writeFile(filepath.Join(s.dir, filename), src); err != nil {
		return "", err
	}

	return path.Join(s.urlPrefix, filename), nil
}

// writeFile copies src to name and leaves no partial file behind on failure.
func writeFile(name string, src io.Reader) error {
	dst, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *LocalFileStore) Delete(ctx context.Context, filePath string) error {
	name := strings.TrimPrefix(filePath, s.urlPrefix+"/")
	if name == filePath || name == "" || strings.ContainsAny(name, `/\`) || name == ".." {
		return ErrInvalidFilePath
	}
	return os.Remove(filepath.Join(s.dir, name))
}
