package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Health check
	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "blog backend is running")
	})

	// Ảnh upload được serve trực tiếp từ đĩa
	router.Static("/uploads", c.Config.Upload.Dir)

	api := router.Group("/api")
	{
		setupAuthRoutes(api, c)
		setupArticleRoutes(api, c)
		setupFriendRoutes(api, c)
		setupArtworkRoutes(api, c)
		setupAssetRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	{
		admin.POST("/login", c.AuthHandler.Login)
		admin.POST("/refresh", c.AuthHandler.Refresh)
	}
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	// Đường dẫn đọc chi tiết là số ít (/api/article/...) để tương thích
	// với frontend hiện có
	api.GET("/article/:category/:slug", c.ArticleHandler.Get)

	articles := api.Group("/articles")
	{
		articles.GET("/index", c.ArticleHandler.Index)

		articles.POST("", middleware.AuthMiddleware(c.JWTManager), c.ArticleHandler.Save)
		articles.DELETE("/:slug", middleware.AuthMiddleware(c.JWTManager), c.ArticleHandler.Delete)
	}
}

// ========================================
// FRIEND ROUTES
// ========================================
func setupFriendRoutes(api *gin.RouterGroup, c *container.Container) {
	friends := api.Group("/friends")
	{
		friends.GET("", c.FriendHandler.List)

		protected := friends.Group("", middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.FriendHandler.Add)
			protected.PUT("/:id", c.FriendHandler.Update)
			protected.DELETE("/:id", c.FriendHandler.Delete)
		}
	}
}

// ========================================
// ARTWORK ROUTES
// ========================================
func setupArtworkRoutes(api *gin.RouterGroup, c *container.Container) {
	artworks := api.Group("/artworks")
	{
		artworks.GET("", c.ArtworkHandler.List)

		protected := artworks.Group("", middleware.AuthMiddleware(c.JWTManager))
		{
			protected.POST("", c.ArtworkHandler.Add)
			protected.PUT("/:id", c.ArtworkHandler.Update)
			protected.DELETE("/:id", c.ArtworkHandler.Delete)
		}
	}
}

// ========================================
// ASSET ROUTES
// ========================================
func setupAssetRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := middleware.AuthMiddleware(c.JWTManager)

	api.POST("/upload", auth, c.AssetHandler.Upload)

	assets := api.Group("/admin/assets", auth)
	{
		assets.GET("", c.AssetHandler.List)
		assets.DELETE("", c.AssetHandler.Delete)
	}
}
