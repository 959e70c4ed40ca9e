package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"gin-boutique/constants"
	"gin-boutique/dto"
	"gin-boutique/middlewares"
	"gin-boutique/repositories"
	"gin-boutique/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service      services.IAuthService
	tokenTTL     time.Duration
	secureCookie bool
}

func NewAuthController(service services.IAuthService, tokenTTL time.Duration, secureCookie bool) IAuthController {
	return &AuthController{service: service, tokenTTL: tokenTTL, secureCookie: secureCookie}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.service.Signup(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrEmailExists})
			return
		}
		log.Printf("Signup error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.Status(http.StatusCreated)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) || errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(constants.TokenCookieName, *token, int(c.tokenTTL.Seconds()), "/", "", c.secureCookie, true)
	ctx.JSON(http.StatusOK, dto.LoginResponse{AccessToken: *token})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	tokenString, ok := middlewares.BearerToken(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	if err := c.service.Logout(tokenString); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	ctx.SetCookie(constants.TokenCookieName, "", -1, "/", "", c.secureCookie, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
