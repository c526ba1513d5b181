package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupUserRoutes(v1, c)
		setupTokenRoutes(v1, c)
		setupBlogRoutes(v1, c)
		setupPostCategoryRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupPhotoRoutes(v1, c)
		setupPhotoCategoryRoutes(v1, c)
		setupPhotoTagRoutes(v1, c)
		setupMessageRoutes(v1, c)
		setupAboutRoutes(v1, c)
	}

	return router
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		// Registration is anonymous but throttled per client IP.
		users.POST("/", middleware.Throttle(c.Redis, "register", c.Config.Throttle.RegisterPerHour),
			c.UserHandler.Register)

		authed := users.Group("", middleware.AuthRequired(c.JWTManager))
		{
			authed.GET("/", c.UserHandler.List)
			// GET /users/me/ is served by Get: the literal id "me" resolves
			// to the caller's profile plus statistics.
			authed.GET("/:id/", c.UserHandler.Get)
			authed.PUT("/:id/", c.UserHandler.Update)
			authed.PATCH("/:id/", c.UserHandler.Update)
			authed.DELETE("/:id/", c.UserHandler.Delete)
		}
	}
}

func setupTokenRoutes(v1 *gin.RouterGroup, c *container.Container) {
	token := v1.Group("/token")
	{
		token.POST("/", c.TokenHandler.Obtain)
		token.POST("/refresh/", c.TokenHandler.Refresh)
		token.POST("/verify/", c.TokenHandler.Verify)
	}
}

func setupBlogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/blog-posts", middleware.AuthOptional(c.JWTManager))
	{
		posts.GET("/", c.BlogHandler.List)
		posts.POST("/", c.BlogHandler.Create)
		posts.GET("/:slug/", c.BlogHandler.Get)
		posts.PUT("/:slug/", c.BlogHandler.Update)
		posts.PATCH("/:slug/", c.BlogHandler.Update)
		posts.DELETE("/:slug/", c.BlogHandler.Delete)
		posts.GET("/:slug/comments/", c.CommentHandler.ListForPost)
	}
}

func setupPostCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/post-categories", middleware.AuthOptional(c.JWTManager))
	{
		categories.GET("/", c.CategoryHandler.List)
		categories.POST("/", c.CategoryHandler.Create)
		categories.GET("/:id/", c.CategoryHandler.Get)
		categories.PUT("/:id/", c.CategoryHandler.Update)
		categories.PATCH("/:id/", c.CategoryHandler.Update)
		categories.DELETE("/:id/", c.CategoryHandler.Delete)
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments", middleware.AuthOptional(c.JWTManager))
	{
		comments.GET("/", c.CommentHandler.List)
		comments.POST("/", c.CommentHandler.Create)
		comments.GET("/:id/", c.CommentHandler.Get)
		comments.PUT("/:id/", c.CommentHandler.Update)
		comments.PATCH("/:id/", c.CommentHandler.Update)
		comments.DELETE("/:id/", c.CommentHandler.Delete)
	}
}

func setupPhotoRoutes(v1 *gin.RouterGroup, c *container.Container) {
	photos := v1.Group("/photos", middleware.AuthOptional(c.JWTManager))
	{
		photos.GET("/", c.PhotoHandler.List)
		photos.POST("/", c.PhotoHandler.Create)
		photos.GET("/:id/", c.PhotoHandler.Get)
		photos.PUT("/:id/", c.PhotoHandler.Update)
		photos.PATCH("/:id/", c.PhotoHandler.Update)
		photos.DELETE("/:id/", c.PhotoHandler.Delete)
	}
}

func setupPhotoCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/photo-categories", middleware.AuthOptional(c.JWTManager))
	{
		categories.GET("/", c.PhotoCategoryHandler.List)
		categories.POST("/", c.PhotoCategoryHandler.Create)
		categories.GET("/:id/", c.PhotoCategoryHandler.Get)
		categories.PUT("/:id/", c.PhotoCategoryHandler.Update)
		categories.PATCH("/:id/", c.PhotoCategoryHandler.Update)
		categories.DELETE("/:id/", c.PhotoCategoryHandler.Delete)
	}
}

func setupPhotoTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/photo-tags")
	{
		tags.GET("/", c.PhotoTagHandler.List)
		tags.GET("/:id/", c.PhotoTagHandler.Get)

		// Tag writes need authentication but not staff.
		authed := tags.Group("", middleware.AuthRequired(c.JWTManager))
		{
			authed.POST("/", c.PhotoTagHandler.Create)
			authed.PUT("/:id/", c.PhotoTagHandler.Update)
			authed.PATCH("/:id/", c.PhotoTagHandler.Update)
			authed.DELETE("/:id/", c.PhotoTagHandler.Delete)
		}
	}
}

func setupMessageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	messages := v1.Group("/messages")
	{
		// The contact form is anonymous but throttled per client IP.
		messages.POST("/", middleware.Throttle(c.Redis, "contact", c.Config.Throttle.ContactPerHour),
			c.MessageHandler.Create)

		admin := messages.Group("", middleware.AuthOptional(c.JWTManager))
		{
			admin.GET("/", c.MessageHandler.List)
			admin.GET("/:id/", c.MessageHandler.Get)
			admin.DELETE("/:id/", c.MessageHandler.Delete)
		}
	}
}

func setupAboutRoutes(v1 *gin.RouterGroup, c *container.Container) {
	about := v1.Group("/about", middleware.AuthOptional(c.JWTManager))
	{
		about.GET("/", c.AboutHandler.Get)
		about.POST("/", c.AboutHandler.Create)
		about.PUT("/", c.AboutHandler.Replace)
	}
}

// healthCheckHandler pings the database and redis.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok", "redis": "ok"}
		healthy := true

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if err := c.Redis.HealthCheck(checkCtx); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}

		if !healthy {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": checks})
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{"status": "ok", "checks": checks})
	}
}
