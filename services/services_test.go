package services

import (
	"context"
	"testing"

	"gin-boutique/infra"
	"gin-boutique/libs"
	"gin-boutique/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Save(ctx context.Context, upload *libs.Upload) (string, error) {
	args := m.Called(ctx, upload)
	return args.String(0), args.Error(1)
}

func (m *mockFileStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := infra.SetupTestDB(uuid.NewString())
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.BlacklistedToken{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hash", Role: "Admin", Cart: models.NewEmptyCart()}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createProduct(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.Product {
	t.Helper()
	product := models.Product{
		Title:       title,
		Price:       9.99,
		Description: "A product for tests",
		ImageURL:    "/images/" + title + ".png",
		UserID:      owner.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}
