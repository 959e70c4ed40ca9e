package middlewares

import (
	"log"
	"net/http"

	"gin-boutique/constants"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the 500 page for errors handlers attached with ctx.Error
// without writing a response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 {
			return
		}
		for _, err := range ctx.Errors {
			log.Printf("%s %s error: %v", ctx.Request.Method, ctx.Request.URL.Path, err.Err)
		}
		if ctx.Writer.Written() {
			return
		}

		if ctx.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
			return
		}
		ctx.HTML(http.StatusInternalServerError, "500", gin.H{
			"pageTitle": "Error!",
			"path":      "/500",
		})
	}
}
