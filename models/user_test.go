package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddToCart(t *testing.T) {
	user := User{Cart: NewEmptyCart()}

	user.AddToCart(1)
	user.AddToCart(2)
	user.AddToCart(1)

	assert.Equal(t, []CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, user.Cart.Data().Items)
}

func TestRemoveFromCart(t *testing.T) {
	user := User{Cart: NewEmptyCart()}
	user.AddToCart(1)
	user.AddToCart(2)

	assert.True(t, user.RemoveFromCart(1))
	assert.Equal(t, []CartItem{{ProductID: 2, Quantity: 1}}, user.Cart.Data().Items)

	assert.False(t, user.RemoveFromCart(1), "removing an absent product leaves the cart unchanged")
	assert.Len(t, user.Cart.Data().Items, 1)
}

func TestRemoveFromZeroValueCart(t *testing.T) {
	var user User
	assert.False(t, user.RemoveFromCart(7))
}
