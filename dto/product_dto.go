package dto

import (
	"strconv"
	"strings"

	"gin-boutique/models"
)

// ProductInput is the submitted add/edit form. Price stays a string so that
// a rejected form can be re-rendered exactly as the user typed it.
type ProductInput struct {
	Title       string `form:"title" validate:"required,min=3,max=120"`
	Price       string `form:"price" validate:"required,price"`
	Description string `form:"description" validate:"required,min=5,max=400"`
}

func (p *ProductInput) Trim() {
	p.Title = strings.TrimSpace(p.Title)
	p.Price = strings.TrimSpace(p.Price)
	p.Description = strings.TrimSpace(p.Description)
}

func (p ProductInput) PriceValue() float64 {
	v, _ := strconv.ParseFloat(p.Price, 64)
	return v
}

// ProductForm carries the values shown in the edit-product view.
type ProductForm struct {
	ID          uint
	Title       string
	Price       string
	Description string
	ImageURL    string
}

func NewProductForm(product *models.Product) ProductForm {
	return ProductForm{
		ID:          product.ID,
		Title:       product.Title,
		Price:       strconv.FormatFloat(product.Price, 'f', 2, 64),
		Description: product.Description,
		ImageURL:    product.ImageURL,
	}
}

func (p ProductInput) Form(id uint) ProductForm {
	return ProductForm{
		ID:          id,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
	}
}

type AddToCartInput struct {
	ProductID uint `form:"productId" json:"productId" binding:"required"`
}
