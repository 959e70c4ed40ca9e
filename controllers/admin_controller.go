package controllers

import (
	"errors"
	"log"
	"net/http"

	"gin-boutique/constants"
	"gin-boutique/dto"
	"gin-boutique/libs"
	"gin-boutique/services"
	"gin-boutique/validators"

	"github.com/gin-gonic/gin"
)

type IAdminController interface {
	GetAddProduct(ctx *gin.Context)
	PostAddProduct(ctx *gin.Context)
	GetEditProduct(ctx *gin.Context)
	PostEditProduct(ctx *gin.Context)
	GetProducts(ctx *gin.Context)
	DeleteProduct(ctx *gin.Context)
}

type AdminController struct {
	service       services.IProductService
	validator     validators.IProductValidator
	maxUploadSize int64
}

func NewAdminController(service services.IProductService, validator validators.IProductValidator, maxUploadSize int64) IAdminController {
	return &AdminController{
		service:       service,
		validator:     validator,
		maxUploadSize: maxUploadSize,
	}
}

type productFormView struct {
	editing          bool
	product          dto.ProductForm
	errorMessage     string
	validationErrors []validators.FieldError
}

func (c *AdminController) renderForm(ctx *gin.Context, status int, view productFormView) {
	pageTitle, path := constants.TitleAddProduct, constants.PathAddProduct
	if view.editing {
		pageTitle, path = constants.TitleEditProduct, constants.PathEditProduct
	}
	if view.validationErrors == nil {
		view.validationErrors = []validators.FieldError{}
	}

	ctx.HTML(status, "admin/edit-product", gin.H{
		"pageTitle":        pageTitle,
		"path":             path,
		"editing":          view.editing,
		"hasError":         status == http.StatusUnprocessableEntity,
		"product":          view.product,
		"errorMessage":     view.errorMessage,
		"validationErrors": view.validationErrors,
	})
}

// submittedForm reads whatever form values survived a failed bind.
func submittedForm(ctx *gin.Context, id uint) dto.ProductForm {
	input := dto.ProductInput{
		Title:       ctx.PostForm("title"),
		Price:       ctx.PostForm("price"),
		Description: ctx.PostForm("description"),
	}
	input.Trim()
	return input.Form(id)
}

// inspectUpload returns nil when no acceptable image was sent.
func (c *AdminController) inspectUpload(ctx *gin.Context) *libs.Upload {
	header, err := ctx.FormFile("image")
	if err != nil {
		return nil
	}
	upload, err := libs.InspectImage(header, c.maxUploadSize)
	if err != nil {
		log.Printf("Rejected upload %q: %v", header.Filename, err)
		return nil
	}
	return upload
}

func (c *AdminController) GetAddProduct(ctx *gin.Context) {
	c.renderForm(ctx, http.StatusOK, productFormView{})
}

func (c *AdminController) PostAddProduct(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.ProductInput
	if err := ctx.ShouldBind(&input); err != nil {
		log.Printf("Bind product form error: %v", err)
		c.renderForm(ctx, http.StatusUnprocessableEntity, productFormView{
			product:      submittedForm(ctx, 0),
			errorMessage: constants.ErrInvalidInput,
		})
		return
	}
	input.Trim()

	upload := c.inspectUpload(ctx)
	if upload == nil {
		c.renderForm(ctx, http.StatusUnprocessableEntity, productFormView{
			product:      input.Form(0),
			errorMessage: constants.ErrNotAnImage,
		})
		return
	}

	result := c.validator.Validate(input)
	if !result.IsEmpty() {
		c.renderForm(ctx, http.StatusUnprocessableEntity, productFormView{
			product:          input.Form(0),
			errorMessage:     result.First(),
			validationErrors: result.Array(),
		})
		return
	}

	if _, err := c.service.Create(ctx.Request.Context(), input, upload, user.ID); err != nil {
		_ = ctx.Error(err)
		return
	}
	ctx.Redirect(http.StatusFound, constants.PathAdminProduct)
}

func (c *AdminController) GetEditProduct(ctx *gin.Context) {
	if !isEditFlag(ctx.Query("edit")) {
		ctx.Redirect(http.StatusFound, constants.PathShop)
		return
	}

	productID, err := parseID(ctx.Param("productId"))
	if err != nil {
		ctx.Redirect(http.StatusFound, constants.PathShop)
		return
	}

	product, err := c.service.FindById(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			ctx.Redirect(http.StatusFound, constants.PathShop)
			return
		}
		_ = ctx.Error(err)
		return
	}

	c.renderForm(ctx, http.StatusOK, productFormView{
		editing: true,
		product: dto.NewProductForm(product),
	})
}

func (c *AdminController) PostEditProduct(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	productID, idErr := parseID(ctx.PostForm("productId"))

	var input dto.ProductInput
	if err := ctx.ShouldBind(&input); err != nil {
		log.Printf("Bind product form error: %v", err)
		c.renderForm(ctx, http.StatusUnprocessableEntity, productFormView{
			editing:      true,
			product:      submittedForm(ctx, productID),
			errorMessage: constants.ErrInvalidInput,
		})
		return
	}
	input.Trim()

	result := c.validator.Validate(input)
	if !result.IsEmpty() {
		c.renderForm(ctx, http.StatusUnprocessableEntity, productFormView{
			editing:          true,
			product:          input.Form(productID),
			errorMessage:     result.First(),
			validationErrors: result.Array(),
		})
		return
	}

	if idErr != nil {
		ctx.Redirect(http.StatusFound, constants.PathShop)
		return
	}

	_, err := c.service.Update(ctx.Request.Context(), productID, user.ID, input, c.inspectUpload(ctx))
	if err != nil {
		// 所有者以外の編集は明示的なエラーにせずトップへ戻す
		if errors.Is(err, services.ErrProductNotFound) || errors.Is(err, services.ErrNotOwner) {
			ctx.Redirect(http.StatusFound, constants.PathShop)
			return
		}
		_ = ctx.Error(err)
		return
	}
	ctx.Redirect(http.StatusFound, constants.PathAdminProduct)
}

func (c *AdminController) GetProducts(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	products, err := c.service.FindByOwner(ctx.Request.Context(), user.ID)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	ctx.HTML(http.StatusOK, "admin/products", gin.H{
		"prods":     *products,
		"pageTitle": constants.TitleAdminProduct,
		"path":      constants.PathAdminProduct,
	})
}

func (c *AdminController) DeleteProduct(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	productID, err := parseID(ctx.Param("productId"))
	if err == nil {
		err = c.service.Delete(ctx.Request.Context(), productID, user.ID)
	}
	if err != nil {
		log.Printf("Delete product %q error: %v", ctx.Param("productId"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrDeleteFailed})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgDeleteSucceeded})
}
