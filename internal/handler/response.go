package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs-lzh/movie-catalog/internal/model"
)

// Every response carries the {success, ...} envelope; errors add a
// human-readable message.

func respondError(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

// userView is the public shape of an account. The password hash never
// leaves the process.
type userView struct {
	ID       uint           `json:"id"`
	Username string         `json:"username"`
	Role     model.UserRole `json:"role"`
}

func newUserView(user *model.User) userView {
	return userView{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
