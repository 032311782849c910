package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studeaf/config"
	"studeaf/database"
	feedbackRepoPkg "studeaf/database/repository/feedback"
	forumRepoPkg "studeaf/database/repository/forum"
	orderRepoPkg "studeaf/database/repository/order"
	reviewRepoPkg "studeaf/database/repository/review"
	summaryRepoPkg "studeaf/database/repository/summary"
	translatorRepoPkg "studeaf/database/repository/translator"
	userRepoPkg "studeaf/database/repository/user"
	"studeaf/handlers"
	"studeaf/middleware"
	"studeaf/routes"
	"studeaf/services/booking"
	"studeaf/services/feedback"
	"studeaf/services/forum"
	"studeaf/services/storage"
	"studeaf/services/summary"
	"studeaf/services/user"
	"studeaf/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}
	storageService := storage.NewStorageService(cld)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	translatorRepo := translatorRepoPkg.NewMongoTranslatorRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	forumRepo := forumRepoPkg.NewMongoForumRepo()
	summaryRepo := summaryRepoPkg.NewMongoSummaryRepo()
	systemFeedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo("feedback_system")
	dosenFeedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo("feedback_dosen")

	// services.
	userService := &user.DefaultUserService{
		Repo:           userRepo,
		TranslatorRepo: translatorRepo,
		OrderRepo:      orderRepo,
		ReviewRepo:     reviewRepo,
		ForumRepo:      forumRepo,
		SummaryRepo:    summaryRepo,
		SystemFeedback: systemFeedbackRepo,
		DosenFeedback:  dosenFeedbackRepo,
	}
	bookingService := &booking.DefaultBookingService{
		TranslatorRepo: translatorRepo,
		OrderRepo:      orderRepo,
		ReviewRepo:     reviewRepo,
		UserRepo:       userRepo,
	}
	forumService := &forum.DefaultForumService{
		Repo:     forumRepo,
		UserRepo: userRepo,
	}
	summaryService := &summary.DefaultSummaryService{
		Repo:     summaryRepo,
		UserRepo: userRepo,
	}
	feedbackService := &feedback.DefaultFeedbackService{
		SystemRepo: systemFeedbackRepo,
		DosenRepo:  dosenFeedbackRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		User:     handlers.NewUserHandler(userService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Forum:    handlers.NewForumHandler(forumService),
		Summary:  handlers.NewSummaryHandler(summaryService),
		Feedback: handlers.NewFeedbackHandler(feedbackService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
