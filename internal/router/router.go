package router

import (
	"net/http"

	"boardlink/internal/auth"
	"boardlink/internal/handlers"
	"boardlink/internal/middleware"
	"boardlink/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, authSvc *auth.Service) {
	// Handlers
	authHandler := handlers.NewAuthHandler(st, authSvc)
	postHandler := handlers.NewPostHandler(st)
	commentHandler := handlers.NewCommentHandler(st)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Board API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public Routes: reads never require an actor
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/posts", postHandler.List)
	r.GET("/posts/:post_id", postHandler.Get)
	r.GET("/posts/:post_id/comments", commentHandler.List)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.RequireAuth(authSvc))
	{
		authorized.GET("/auth/me", authHandler.Me)

		authorized.POST("/posts", postHandler.Create)
		authorized.PUT("/posts/:post_id", postHandler.Update)
		authorized.DELETE("/posts/:post_id", postHandler.Delete)

		authorized.POST("/posts/:post_id/comments", commentHandler.Create)
		authorized.PUT("/posts/:post_id/comments/:comment_id", commentHandler.Update)
		authorized.DELETE("/posts/:post_id/comments/:comment_id", commentHandler.Delete)
	}
}
