package repositories

import (
	"context"

	"gin-boutique/models"

	"gorm.io/gorm"
)

type IProductRepository interface {
	FindAll(ctx context.Context) (*[]models.Product, error)
	FindByOwner(ctx context.Context, userID uint) (*[]models.Product, error)
	FindById(ctx context.Context, productID uint) (*models.Product, error)
	Create(ctx context.Context, newProduct models.Product) (*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	DeleteOwned(ctx context.Context, productID uint, userID uint) (bool, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) (*[]models.Product, error) {
	var products []models.Product
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) FindByOwner(ctx context.Context, userID uint) (*[]models.Product, error) {
	var products []models.Product
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}
	return &products, nil
}

func (r *ProductRepository) FindById(ctx context.Context, productID uint) (*models.Product, error) {
	var product models.Product
	result := r.db.WithContext(ctx).First(&product, "id = ?", productID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, newProduct models.Product) (*models.Product, error) {
	result := r.db.WithContext(ctx).Create(&newProduct)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newProduct, nil
}

func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteOwned deletes only when the product belongs to userID and reports whether a row went away.
func (r *ProductRepository) DeleteOwned(ctx context.Context, productID uint, userID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ? AND user_id = ?", productID, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
