package controllers

import (
	"net/http"

	"gin-boutique/constants"
	"gin-boutique/services"

	"github.com/gin-gonic/gin"
)

type IShopController interface {
	GetIndex(ctx *gin.Context)
}

type ShopController struct {
	service services.IProductService
}

func NewShopController(service services.IProductService) IShopController {
	return &ShopController{service: service}
}

func (c *ShopController) GetIndex(ctx *gin.Context) {
	products, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.HTML(http.StatusOK, "shop/index", gin.H{
		"prods":     *products,
		"pageTitle": constants.TitleShop,
		"path":      constants.PathShop,
	})
}
