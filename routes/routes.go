// routes.go - HTTP route setup

// Package routes defines the HTTP routes of the shop admin API.
package routes

import (
	"log/slog"

	"go-shop-admin/auth"
	"go-shop-admin/config"
	"go-shop-admin/handlers"
	"go-shop-admin/middleware"
	"go-shop-admin/repository"
	"go-shop-admin/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, handlers and middleware onto router.
func Setup(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *slog.Logger) {
	headers := cors.DefaultConfig()
	headers.AllowOrigins = []string{cfg.FrontendURL}
	headers.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	headers.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	headers.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	headers.AllowCredentials = true
	router.Use(cors.New(headers)) // Apply CORS before anything else

	router.Use(middleware.RequestLogger(log), gin.Recovery())

	users := repository.NewUserRepository(db)
	products := repository.NewProductRepository(db)
	reviews := repository.NewReviewRepository(db)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTExpiry)
	validator := validation.New()

	authHandler := handlers.NewAuthHandler(users, tokens, log)
	productHandler := handlers.NewProductHandler(products, validator, log)
	reviewHandler := handlers.NewReviewHandler(reviews, users, products, validator, log)
	userHandler := handlers.NewUserHandler(users, validator, log)

	router.GET("/health", handlers.Health(db))

	// Public routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	authenticated := router.Group("", middleware.Authenticate(tokens, users))

	// Any authenticated user
	shop := authenticated.Group("/products", middleware.RequireAuth())
	{
		shop.GET("", productHandler.PublicIndex)
		shop.GET("/:id", productHandler.PublicShow)
	}

	// Admin routes; the gate runs before every handler
	admin := authenticated.Group("/admin", middleware.RequireAdmin(auth.AdminGate{}))
	{
		adminProducts := admin.Group("/products")
		adminProducts.GET("", productHandler.Index)
		adminProducts.POST("", productHandler.Store)
		adminProducts.GET("/trashed", productHandler.Trashed)
		adminProducts.GET("/:id", productHandler.Show)
		adminProducts.PUT("/:id", productHandler.Update)
		adminProducts.PATCH("/:id", productHandler.Update)
		adminProducts.DELETE("/:id", productHandler.Destroy)
		adminProducts.POST("/:id/restore", productHandler.Restore)
		adminProducts.DELETE("/:id/force", productHandler.ForceDestroy)

		adminReviews := admin.Group("/reviews")
		adminReviews.GET("", reviewHandler.Index)
		adminReviews.POST("", reviewHandler.Store)
		adminReviews.GET("/trashed", reviewHandler.Trashed)
		adminReviews.GET("/:id", reviewHandler.Show)
		adminReviews.PUT("/:id", reviewHandler.Update)
		adminReviews.PATCH("/:id", reviewHandler.Update)
		adminReviews.DELETE("/:id", reviewHandler.Destroy)
		adminReviews.POST("/:id/restore", reviewHandler.Restore)
		adminReviews.DELETE("/:id/force", reviewHandler.ForceDestroy)

		adminUsers := admin.Group("/users")
		adminUsers.GET("", userHandler.Index)
		adminUsers.POST("", userHandler.Store)
		adminUsers.GET("/:id", userHandler.Show)
		adminUsers.PUT("/:id", userHandler.Update)
		adminUsers.PATCH("/:id", userHandler.Update)
		adminUsers.DELETE("/:id", userHandler.Destroy)
	}
}
