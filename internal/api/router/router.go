package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gaurav-Shaw09/PenFolio/config"
	_ "github.com/Gaurav-Shaw09/PenFolio/docs"
	"github.com/Gaurav-Shaw09/PenFolio/internal/api/handler"
	"github.com/Gaurav-Shaw09/PenFolio/internal/middleware"
	"github.com/Gaurav-Shaw09/PenFolio/internal/service"
)

// New builds the gin engine with the full middleware chain and all routes.
func New(cfg *config.Config, h *handler.Handler, accounts service.AccountService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidations()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware(cfg.Otel.Service))
	r.Use(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/otp", h.SendOTP)
		auth.POST("/otp/verify", h.VerifyOTP)
	}

	authed := middleware.Auth(accounts)

	profile := r.Group("/api/profile")
	{
		profile.GET("/:username", h.GetProfile)
		profile.PUT("/:user_id", authed, h.UpdateProfile)
	}

	relations := r.Group("/api/relations")
	relations.Use(authed)
	{
		relations.POST("/follow", h.Follow)
		relations.POST("/unfollow", h.Unfollow)
		relations.GET("/:user_id/followers", h.ListFollowers)
		relations.GET("/:user_id/following", h.ListFollowing)
	}

	posts := r.Group("/api/posts")
	{
		posts.GET("", h.ListPosts)
		posts.GET("/user/:user_id", h.ListPostsByAuthor)
		posts.GET("/:id", h.GetPost)
		posts.POST("", authed, h.CreatePost)
		posts.GET("/following", authed, h.FollowingFeed)
		posts.PUT("/:id", authed, h.UpdatePost)
		posts.DELETE("/:id", authed, h.DeletePost)
		posts.POST("/:id/like", authed, h.ToggleLike)
		posts.POST("/:id/comments", authed, h.AddComment)
		posts.DELETE("/:id/comments/:comment_id", authed, h.DeleteComment)
		posts.POST("/:id/comments/:comment_id/like", authed, h.ToggleCommentLike)
	}

	notifications := r.Group("/api/notifications")
	notifications.Use(authed)
	{
		notifications.GET("/:user_id", h.ListNotifications)
		notifications.PUT("/:user_id/read", h.MarkNotificationsRead)
		notifications.DELETE("/:user_id", h.ClearNotifications)
	}

	messages := r.Group("/api/messages")
	messages.Use(authed)
	{
		messages.POST("", h.SendMessage)
		messages.GET("/:from/:to", h.ChatHistory)
		messages.GET("/stream/:with", h.ChatStream)
	}

	return r
}
