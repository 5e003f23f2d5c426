package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs-lzh/movie-catalog/internal/auth"
)

// SetupRoutes mounts the whole HTTP surface. The policy middleware sits in
// front of every movie route, so no movie handler is reachable without
// passing the table check first.
func SetupRoutes(router *gin.Engine, tokens *auth.TokenService, authHandler *AuthHandler, movieHandler *MovieHandler, auditHandler *AuditHandler) {
	router.GET("/health", HandleHealth)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.HandleLogin)
		authGroup.POST("/register", authHandler.HandleRegister)
		authGroup.GET("/me", RequireAuth(tokens), authHandler.HandleMe)
	}

	movies := api.Group("/movies")
	movies.Use(RequireAuth(tokens))
	{
		movies.GET("", RequirePermission(auth.ActionMovieList), movieHandler.HandleList)
		movies.GET("/:id", RequirePermission(auth.ActionMovieList), movieHandler.HandleGet)
		movies.POST("", RequirePermission(auth.ActionMovieCreate), movieHandler.HandleCreate)
		movies.PUT("/:id", RequirePermission(auth.ActionMovieUpdate), movieHandler.HandleUpdate)
		movies.PATCH("/:id", RequirePermission(auth.ActionMovieUpdate), movieHandler.HandleUpdate)
		movies.DELETE("/:id", RequirePermission(auth.ActionMovieDelete), movieHandler.HandleDelete)
	}

	audit := api.Group("/audit")
	audit.Use(RequireAuth(tokens))
	{
		audit.GET("", RequirePermission(auth.ActionAuditList), auditHandler.HandleList)
	}
}
