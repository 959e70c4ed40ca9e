package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string                   `gorm:"not null;unique"`
	Password string                   `gorm:"not null"`
	Role     string                   `gorm:"not null;default:'User'"`
	Cart     datatypes.JSONType[Cart] `gorm:"not null"`
	Products []Product                `gorm:"constraint:OnDelete:CASCADE;"`
}

// Cart holds weak references to products; entries are pruned when a product is deleted.
type Cart struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

func NewEmptyCart() datatypes.JSONType[Cart] {
	return datatypes.NewJSONType(Cart{Items: []CartItem{}})
}

func (u *User) AddToCart(productID uint) {
	cart := u.Cart.Data()
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			u.Cart = datatypes.NewJSONType(cart)
			return
		}
	}
	cart.Items = append(cart.Items, CartItem{ProductID: productID, Quantity: 1})
	u.Cart = datatypes.NewJSONType(cart)
}

// RemoveFromCart drops every item for productID and reports whether the cart changed.
func (u *User) RemoveFromCart(productID uint) bool {
	cart := u.Cart.Data()
	kept := make([]CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return false
	}
	u.Cart = datatypes.NewJSONType(Cart{Items: kept})
	return true
}
