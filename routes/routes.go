package routes

import (
	"net/http"
	"time"

	"studeaf/handlers"
	"studeaf/middleware"
	"studeaf/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes.
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.User.LogoutHandler)
		api.GET("/me", hb.User.GetProfileHandler)
		api.PATCH("/me", hb.User.UpdateProfileHandler)
		api.POST("/me/verify-password", hb.User.VerifyPasswordHandler)
		api.POST("/me/change-password", hb.User.ChangePasswordHandler)
		api.DELETE("/me", hb.User.DeleteAccountHandler)
	}
}

// RegisterBookingRoutes registers the translator directory, order lifecycle
// and review ledger endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	translators := r.Group("/api/translators")
	{
		translators.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		translators.POST("", hb.Booking.CreateTranslatorHandler)
		translators.GET("", hb.Booking.ListTranslatorsHandler)
		translators.GET("/:id", hb.Booking.GetTranslatorHandler)
		translators.PUT("/:id", hb.Booking.UpdateTranslatorHandler)
		translators.DELETE("/:id", hb.Booking.DeleteTranslatorHandler)
		translators.POST("/:id/orders", hb.Booking.CreateOrderHandler)
		translators.GET("/:id/reviews", hb.Booking.ListTranslatorReviewsHandler)
	}

	orders := r.Group("/api/orders")
	{
		orders.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		orders.GET("/mine", hb.Booking.ListUserOrdersHandler)
		orders.GET("/incoming", hb.Booking.ListTranslatorOrdersHandler)
		orders.GET("/:id", hb.Booking.GetOrderHandler)
		orders.PUT("/:id/status", hb.Booking.UpdateOrderStatusHandler)
		orders.POST("/:id/complete", hb.Booking.CompleteOrderHandler)
		orders.POST("/:id/review", hb.Booking.CreateReviewHandler)
		orders.PUT("/:id/review", hb.Booking.UpdateReviewHandler)
		orders.GET("/:id/review", hb.Booking.GetReviewHandler)
	}

	reviews := r.Group("/api/reviews")
	{
		reviews.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		reviews.DELETE("/:id", hb.Booking.DeleteReviewHandler)
	}
}

// RegisterForumRoutes registers discussion forum endpoints.
func RegisterForumRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/forums")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Forum.CreatePostHandler)
		api.GET("", hb.Forum.ListPostsHandler)
		api.GET("/:id", hb.Forum.GetPostHandler)
		api.PUT("/:id", hb.Forum.UpdatePostHandler)
		api.DELETE("/:id", hb.Forum.DeletePostHandler)
		api.POST("/:id/comments", hb.Forum.AddCommentHandler)
		api.POST("/:id/like", hb.Forum.ToggleLikeHandler)
	}
}

// RegisterSummaryRoutes registers lecture summary endpoints.
func RegisterSummaryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/summaries")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Summary.CreateDraftHandler)
		api.GET("", hb.Summary.ListSummariesHandler)
		api.GET("/:id", hb.Summary.GetSummaryHandler)
		api.PUT("/:id", hb.Summary.UpdateDraftHandler)
		api.POST("/:id/publish", hb.Summary.PublishHandler)
		api.DELETE("/:id", hb.Summary.DeleteSummaryHandler)
		api.POST("/:id/comments", hb.Summary.AddCommentHandler)
		api.POST("/:id/like", hb.Summary.ToggleLikeHandler)
		api.POST("/:id/bookmark", hb.Summary.ToggleBookmarkHandler)
	}
}

// RegisterFeedbackRoutes registers the two feedback ledgers.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedback/:ledger")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Feedback.SubmitHandler)
		api.GET("", hb.Feedback.ListHandler)
		api.GET("/mine", hb.Feedback.GetOwnHandler)
		api.PUT("/:id", hb.Feedback.UpdateHandler)
		api.DELETE("/:id", hb.Feedback.DeleteHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/:folder", hb.Storage.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterForumRoutes(r, hb)
	RegisterSummaryRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
