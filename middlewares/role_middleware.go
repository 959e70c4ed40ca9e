package middlewares

import (
	"log"
	"net/http"
	"strings"

	"gin-boutique/models"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア
// AuthMiddlewareの後に使用することを想定（ctxに"user"が設定されている必要がある）
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// トークンのロールではなく、DBから取得したroleカラムを使用する（大文字小文字を無視）
		userRole := strings.TrimSpace(strings.ToLower(userModel.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				ctx.Next()
				return
			}
		}

		log.Printf("RoleBasedAccessControl: Access denied. User ID=%d, Role=%s, Required roles=%v",
			userModel.ID, userModel.Role, allowedRoles)
		ctx.AbortWithStatus(http.StatusForbidden)
	}
}
