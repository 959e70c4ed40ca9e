package controllers

import (
	"strconv"

	"gin-boutique/models"

	"github.com/gin-gonic/gin"
)

func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	userModel, ok := user.(*models.User)
	return userModel, ok
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// isEditFlag treats an absent, empty, "false" or "0" edit query as not set.
func isEditFlag(value string) bool {
	switch value {
	case "", "false", "0":
		return false
	}
	return true
}
