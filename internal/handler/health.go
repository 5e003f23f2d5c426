package handler

import (
	"github.com/gin-gonic/gin"
)

func HandleHealth(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status": "healthy",
	})
}
