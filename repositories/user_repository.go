package repositories

import (
	"context"
	"errors"

	"gin-boutique/constants"
	"gin-boutique/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New(constants.ErrUserNotFound)

type IUserRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	FindUser(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, userID uint) (*models.User, error)
	UpdateCart(ctx context.Context, user *models.User) error
	ForEachUser(ctx context.Context, batchSize int, fn func(user *models.User) error) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	result := r.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// UpdateCart writes only the cart column so a concurrent profile change is not overwritten.
func (r *UserRepository) UpdateCart(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Model(user).Update("cart", user.Cart).Error
}

// ForEachUser walks every user in batches. Returning an error from fn stops the walk.
func (r *UserRepository) ForEachUser(ctx context.Context, batchSize int, fn func(user *models.User) error) error {
	var users []models.User
	result := r.db.WithContext(ctx).FindInBatches(&users, batchSize, func(tx *gorm.DB, batch int) error {
		for i := range users {
			if err := fn(&users[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return result.Error
}
