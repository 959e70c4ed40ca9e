package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gin-boutique/constants"
	"gin-boutique/dto"
	"gin-boutique/libs"
	"gin-boutique/models"
	"gin-boutique/repositories"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New(constants.ErrProductNotFound)
	ErrNotOwner        = errors.New("product belongs to another user")
)

const cartSweepBatchSize = 100

type IProductService interface {
	FindAll(ctx context.Context) (*[]models.Product, error)
	FindByOwner(ctx context.Context, userID uint) (*[]models.Product, error)
	FindById(ctx context.Context, productID uint) (*models.Product, error)
	Create(ctx context.Context, input dto.ProductInput, upload *libs.Upload, userID uint) (*models.Product, error)
	Update(ctx context.Context, productID uint, userID uint, input dto.ProductInput, upload *libs.Upload) (*models.Product, error)
	Delete(ctx context.Context, productID uint, userID uint) error
}

type ProductService struct {
	repository     repositories.IProductRepository
	userRepository repositories.IUserRepository
	files          libs.IFileStore
}

func NewProductService(repository repositories.IProductRepository, userRepository repositories.IUserRepository, files libs.IFileStore) IProductService {
	return &ProductService{
		repository:     repository,
		userRepository: userRepository,
		files:          files,
	}
}

func (s *ProductService) FindAll(ctx context.Context) (*[]models.Product, error) {
	return s.repository.FindAll(ctx)
}

func (s *ProductService) FindByOwner(ctx context.Context, userID uint) (*[]models.Product, error) {
	return s.repository.FindByOwner(ctx, userID)
}

func (s *ProductService) FindById(ctx context.Context, productID uint) (*models.Product, error) {
	product, err := s.repository.FindById(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %d: %w", productID, err)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input dto.ProductInput, upload *libs.Upload, userID uint) (*models.Product, error) {
	imageURL, err := s.files.Save(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	newProduct := models.Product{
		Title:       input.Title,
		Price:       input.PriceValue(),
		Description: input.Description,
		ImageURL:    imageURL,
		UserID:      userID,
	}
	created, err := s.repository.Create(ctx, newProduct)
	if err != nil {
		libs.DeleteQuietly(ctx, s.files, imageURL)
		return nil, fmt.Errorf("create product: %w", err)
	}
	log.Printf("Created product %d for user %d", created.ID, userID)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, productID uint, userID uint, input dto.ProductInput, upload *libs.Upload) (*models.Product, error) {
	targetProduct, err := s.FindById(ctx, productID)
	if err != nil {
		return nil, err
	}
	if targetProduct.UserID != userID {
		return nil, ErrNotOwner
	}

	targetProduct.Title = input.Title
	targetProduct.Price = input.PriceValue()
	targetProduct.Description = input.Description

	// 新しい画像がアップロードされた場合のみ差し替える
	oldImageURL := ""
	if upload != nil {
		newImageURL, err := s.files.Save(ctx, upload)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		oldImageURL = targetProduct.ImageURL
		targetProduct.ImageURL = newImageURL
	}

	if err := s.repository.Save(ctx, targetProduct); err != nil {
		if upload != nil {
			libs.DeleteQuietly(ctx, s.files, targetProduct.ImageURL)
		}
		return nil, fmt.Errorf("update product %d: %w", productID, err)
	}
	libs.DeleteQuietly(ctx, s.files, oldImageURL)

	log.Printf("Updated product %d", productID)
	return targetProduct, nil
}

func (s *ProductService) Delete(ctx context.Context, productID uint, userID uint) error {
	targetProduct, err := s.FindById(ctx, productID)
	if err != nil {
		return err
	}

	deleted, err := s.repository.DeleteOwned(ctx, productID, userID)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", productID, err)
	}
	if !deleted {
		log.Printf("Delete product %d skipped: not owned by user %d", productID, userID)
		return nil
	}

	// 行は削除済みなので、クライアントが切断しても後片付けは最後まで行う
	cleanupCtx := context.WithoutCancel(ctx)
	libs.DeleteQuietly(cleanupCtx, s.files, targetProduct.ImageURL)
	s.removeFromCarts(cleanupCtx, productID)

	log.Printf("Deleted product %d", productID)
	return nil
}

// removeFromCarts prunes productID from every cart. It is not transactional:
// failures are logged and the sweep moves on to the next user.
func (s *ProductService) removeFromCarts(ctx context.Context, productID uint) {
	pruned := 0
	err := s.userRepository.ForEachUser(ctx, cartSweepBatchSize, func(user *models.User) error {
		if !user.RemoveFromCart(productID) {
			return nil
		}
		if err := s.userRepository.UpdateCart(ctx, user); err != nil {
			log.Printf("Remove product %d from cart of user %d error: %v", productID, user.ID, err)
			return nil
		}
		pruned++
		return nil
	})
	if err != nil {
		log.Printf("Cart sweep for product %d error: %v", productID, err)
	}
	log.Printf("Removed product %d from %d carts", productID, pruned)
}
