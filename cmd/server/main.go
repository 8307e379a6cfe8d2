package main

import (
	"fmt"
	"log"
	"net/http"

	"circleup/backend/internal/auth"
	"circleup/backend/internal/config"
	"circleup/backend/internal/database"
	"circleup/backend/internal/handler"
	"circleup/backend/internal/notify"
	"circleup/backend/internal/social"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "circleup/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           CircleUp API
// @version         1.0
// @description     This is the API for the CircleUp social service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Wire the core to storage and the in-app notification sink.
	sink := notify.NewStore(database.DB)
	handler.Setup(database.DB, sink, social.ThreadConfig{})

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.PUT("/me/preferences", handler.UpdateNotificationPrefs)
			userRoutes.GET("/me/notifications", handler.GetNotifications)
			userRoutes.GET("/:id", handler.GetUserByID)
		}

		// Notification routes (protected)
		notificationRoutes := apiV1.Group("/notifications")
		notificationRoutes.Use(auth.AuthMiddleware())
		{
			notificationRoutes.POST("/:id/read", handler.MarkNotificationRead)
		}

		// Friendship routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.GET("", handler.GetFriends)
			friendRoutes.DELETE("/:id", handler.RemoveFriend)
			friendRoutes.POST("/requests", handler.SendFriendRequest)
			friendRoutes.GET("/requests/sent", handler.GetSentRequests)
			friendRoutes.GET("/requests/received", handler.GetReceivedRequests)
			friendRoutes.POST("/requests/:id/accept", handler.AcceptFriendRequest)
			friendRoutes.POST("/requests/:id/reject", handler.RejectFriendRequest)
			friendRoutes.POST("/requests/:id/cancel", handler.CancelFriendRequest)
		}

		// Post routes (protected)
		postRoutes := apiV1.Group("/posts")
		postRoutes.Use(auth.AuthMiddleware())
		{
			postRoutes.POST("", handler.CreatePost)
			postRoutes.GET("", handler.GetPosts)
			postRoutes.GET("/:id", handler.GetPostByID)
			postRoutes.PUT("/:id", handler.UpdatePost)
			postRoutes.DELETE("/:id", handler.DeletePost)
			postRoutes.POST("/:id/comments", handler.CreateComment(social.KindPost))
			postRoutes.GET("/:id/comments", handler.ListComments(social.KindPost))
			postRoutes.POST("/:id/like", handler.LikeContent(social.KindPost))
			postRoutes.DELETE("/:id/like", handler.UnlikeContent(social.KindPost))
		}

		// Movie routes (catalog reads are public, interactions protected)
		movieRoutes := apiV1.Group("/movies")
		{
			movieRoutes.GET("", auth.OptionalAuthMiddleware(), handler.GetMovies)
			movieRoutes.GET("/:id", auth.OptionalAuthMiddleware(), handler.GetMovieByID)

			movieInteractions := movieRoutes.Group("")
			movieInteractions.Use(auth.AuthMiddleware())
			{
				movieInteractions.POST("/:id/comments", handler.CreateComment(social.KindMovie))
				movieInteractions.GET("/:id/comments", handler.ListComments(social.KindMovie))
				movieInteractions.POST("/:id/like", handler.LikeContent(social.KindMovie))
				movieInteractions.DELETE("/:id/like", handler.UnlikeContent(social.KindMovie))
			}
		}

		// Comment routes (protected)
		commentRoutes := apiV1.Group("/comments")
		commentRoutes.Use(auth.AuthMiddleware())
		{
			commentRoutes.GET("/:id", handler.GetComment)
			commentRoutes.GET("/:id/replies", handler.ListCommentReplies)
			commentRoutes.PUT("/:id", handler.UpdateComment)
			commentRoutes.DELETE("/:id", handler.DeleteComment)
			commentRoutes.POST("/:id/like", handler.LikeContent(social.KindComment))
			commentRoutes.DELETE("/:id/like", handler.UnlikeContent(social.KindComment))
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Movie catalog CRUD
			adminMovieRoutes := adminRoutes.Group("/movies")
			{
				adminMovieRoutes.POST("", handler.CreateMovie)
				adminMovieRoutes.PUT("/:id", handler.UpdateMovie)
				adminMovieRoutes.DELETE("/:id", handler.DeleteMovie)
			}
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
