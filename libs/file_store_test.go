package libs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"gin-boutique/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalFileStore(dir, "/images")
	upload, err := InspectImage(testutil.FileHeader(t, "mug.png", testutil.PNG), 0)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), upload)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/images/"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	stored := filepath.Join(dir, strings.TrimPrefix(path, "/images/"))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, testutil.PNG, content)

	require.NoError(t, store.Delete(context.Background(), path))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStoreRejectsPathsOutsideDir(t *testing.T) {
	store := NewLocalFileStore(t.TempDir(), "/images")

	for _, path := range []string{"/etc/passwd", "/images/../secret", "/images/", "other/a.png"} {
		assert.ErrorIs(t, store.Delete(context.Background(), path), ErrInvalidFilePath, path)
	}
}

func TestDeleteQuietlyIgnoresErrors(t *testing.T) {
	store := NewLocalFileStore(t.TempDir(), "/images")

	assert.NotPanics(t, func() {
		DeleteQuietly(context.Background(), store, "/images/missing.png")
		DeleteQuietly(context.Background(), store, "")
	})
}

func TestCloudinaryPublicID(t *testing.T) {
	id, err := cloudinaryPublicID("https://res.cloudinary.com/demo/image/upload/v1712345/products/abc-123.png")
	require.NoError(t, err)
	assert.Equal(t, "products/abc-123", id)

	_, err = cloudinaryPublicID("https://example.com/a.png")
	assert.ErrorIs(t, err, ErrInvalidFilePath)
}

func TestWriteFileRemovesPartialFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "partial.png")
	src := io.MultiReader(strings.NewReader("half an image"), iotest.ErrReader(errors.New("connection reset")))

	err := writeFile(name, src)

	assert.ErrorContains(t, err, "connection reset")
	_, statErr := os.Stat(name)
	assert.True(t, os.IsNotExist(statErr))
}
