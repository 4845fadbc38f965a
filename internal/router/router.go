package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/noteblog-dev/noteblog/internal/handlers"
	"github.com/noteblog-dev/noteblog/internal/middleware"
	"github.com/noteblog-dev/noteblog/internal/notify"
	"github.com/noteblog-dev/noteblog/internal/social"
	"github.com/noteblog-dev/noteblog/internal/store"
	"github.com/noteblog-dev/noteblog/internal/types"
)

func NewRouter(users store.UserStore, posts store.PostStore, messages store.MessageStore) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	notifyService := notify.NewService(users)
	socialService := social.NewService(users, posts, notifyService)

	authHandler := handlers.NewAuthHandler(users)
	postsHandler := handlers.NewPostsHandler(posts, socialService)
	socialHandler := handlers.NewSocialHandler(socialService)
	notificationsHandler := handlers.NewNotificationsHandler(users, notifyService)
	savedHandler := handlers.NewSavedHandler(users, posts)
	profileHandler := handlers.NewProfileHandler(users, posts)
	searchHandler := handlers.NewSearchHandler(users, posts)
	contactHandler := handlers.NewContactHandler(messages)
	adminHandler := handlers.NewAdminHandler(users, posts, messages)

	authRequired := middleware.AuthMiddleware(users)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/categories", handlers.Categories)
		api.GET("/search", searchHandler.Search)
		api.GET("/profile/:username", profileHandler.Get)
		api.POST("/contact", contactHandler.Create)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authRequired, authHandler.Me)
			auth.PUT("/settings", authRequired, authHandler.UpdateSettings)
		}

		postRoutes := api.Group("/posts")
		{
			postRoutes.GET("", postsHandler.List)
			postRoutes.GET("/:id", postsHandler.Get)
			postRoutes.POST("", authRequired, postsHandler.Create)
			postRoutes.PUT("/:id", authRequired, postsHandler.Update)
			postRoutes.DELETE("/:id", authRequired, postsHandler.Delete)

			postRoutes.POST("/:id/like", authRequired, socialHandler.Like)
			postRoutes.POST("/:id/comments", authRequired, socialHandler.Comment)
			postRoutes.POST("/:id/save", authRequired, savedHandler.Save)
			postRoutes.POST("/:id/unsave", authRequired, savedHandler.Unsave)
		}

		userRoutes := api.Group("/users", authRequired)
		{
			userRoutes.POST("/:id/follow", socialHandler.Follow)
			userRoutes.POST("/:id/unfollow", socialHandler.Unfollow)
		}

		api.GET("/saved", authRequired, savedHandler.List)

		notifications := api.Group("/notifications", authRequired)
		{
			notifications.GET("", notificationsHandler.List)
			notifications.POST("/:id/read", notificationsHandler.Read)
		}

		admin := api.Group("/admin", authRequired, middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
		}
	}

	return r
}
