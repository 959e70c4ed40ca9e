package controllers

import (
	"errors"
	"log"
	"net/http"

	"gin-boutique/constants"
	"gin-boutique/dto"
	"gin-boutique/services"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	GetCart(ctx *gin.Context)
	PostCart(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": user.Cart.Data()})
}

func (c *CartController) PostCart(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.AddToCartInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	cart, err := c.service.AddProduct(ctx.Request.Context(), user, input.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrProductNotFound})
			return
		}
		log.Printf("Add to cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": cart})
}
