package middlewares

import (
	"net/http"
	"strings"

	"gin-boutique/constants"
	"gin-boutique/services"

	"github.com/gin-gonic/gin"
)

// BearerToken reads the token from the Authorization header, falling back to the token cookie.
func BearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	if header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return "", false
		}
		return strings.TrimPrefix(header, "Bearer "), true
	}

	cookie, err := ctx.Cookie(constants.TokenCookieName)
	if err != nil || cookie == "" {
		return "", false
	}
	return cookie, true
}

func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := BearerToken(ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := authService.GetUserFromToken(ctx.Request.Context(), tokenString)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set("user", user)

		ctx.Next()
	}
}
