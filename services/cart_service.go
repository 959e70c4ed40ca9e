package services

import (
	"context"
	"fmt"

	"gin-boutique/models"
	"gin-boutique/repositories"
)

type ICartService interface {
	AddProduct(ctx context.Context, user *models.User, productID uint) (*models.Cart, error)
}

type CartService struct {
	products IProductService
	users    repositories.IUserRepository
}

func NewCartService(products IProductService, users repositories.IUserRepository) ICartService {
	return &CartService{products: products, users: users}
}

func (s *CartService) AddProduct(ctx context.Context, user *models.User, productID uint) (*models.Cart, error) {
	if _, err := s.products.FindById(ctx, productID); err != nil {
		return nil, err
	}

	user.AddToCart(productID)
	if err := s.users.UpdateCart(ctx, user); err != nil {
		return nil, fmt.Errorf("update cart of user %d: %w", user.ID, err)
	}
	cart := user.Cart.Data()
	return &cart, nil
}
