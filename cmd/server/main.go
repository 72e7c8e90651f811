package main

import (
	"log"
	"time"

	"github.com/dresspalette/backend/internal/config"
	"github.com/dresspalette/backend/internal/database"
	"github.com/dresspalette/backend/internal/handler"
	"github.com/dresspalette/backend/internal/middleware"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/internal/service"
	"github.com/dresspalette/backend/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Redis backs the auth rate limiter. A connection failure is fatal at
	// boot; at runtime the limiter fails open.
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Invalid Redis URL", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	dressRepo := repository.NewDressRepository(database.DB)
	bookingRepo := repository.NewBookingRepository(database.DB)
	makeupRepo := repository.NewMakeupRepository(database.DB)
	postRepo := repository.NewPostRepository(database.DB)
	messageRepo := repository.NewMessageRepository(database.DB)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	catalogService := service.NewCatalogService(dressRepo, makeupRepo)
	bookingService := service.NewBookingService(bookingRepo, dressRepo, makeupRepo)
	postService := service.NewPostService(postRepo)
	messageService := service.NewMessageService(messageRepo)
	dashboardService := service.NewDashboardService(userRepo, dressRepo, bookingRepo, makeupRepo, messageRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	dressHandler := handler.NewDressHandler(catalogService)
	makeupHandler := handler.NewMakeupHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	postHandler := handler.NewPostHandler(postService)
	messageHandler := handler.NewMessageHandler(messageService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	adminHandler := handler.NewAdminHandler(dashboardService, authService)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")

	// Public catalog and blog
	api.GET("/dresses", dressHandler.List)
	api.GET("/dresses/:id", dressHandler.Get)
	api.GET("/makeup/services", makeupHandler.ListServices)
	api.GET("/posts", postHandler.ListPublished)
	api.GET("/posts/:slug", postHandler.GetBySlug)

	// Auth endpoints, rate limited per client IP
	auth := api.Group("/auth")
	auth.Use(rateLimiter.Middleware())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// Authenticated member routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.PUT("/profile", authHandler.UpdateProfile)
		protected.GET("/dashboard", dashboardHandler.MyDashboard)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/appointments", bookingHandler.CreateAppointment)
		protected.GET("/appointments", bookingHandler.ListMyAppointments)

		protected.POST("/messages", messageHandler.Send)
		protected.GET("/messages", messageHandler.ListMine)
	}

	// Admin console
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/overview", adminHandler.Overview)

		admin.GET("/dresses", dressHandler.List)
		admin.POST("/dresses", dressHandler.Create)
		admin.PUT("/dresses/:id", dressHandler.Update)
		admin.DELETE("/dresses/:id", dressHandler.Delete)

		admin.GET("/makeup/services", makeupHandler.ListServices)
		admin.POST("/makeup/services", makeupHandler.CreateService)
		admin.PUT("/makeup/services/:id", makeupHandler.UpdateService)
		admin.DELETE("/makeup/services/:id", makeupHandler.DeleteService)

		admin.GET("/bookings", bookingHandler.ListAllBookings)
		admin.PUT("/bookings/:id/status", bookingHandler.UpdateBookingStatus)
		admin.GET("/appointments", bookingHandler.ListAllAppointments)
		admin.PUT("/appointments/:id/status", bookingHandler.UpdateAppointmentStatus)

		admin.GET("/posts", postHandler.ListAll)
		admin.POST("/posts", postHandler.Create)
		admin.PUT("/posts/:id", postHandler.Update)
		admin.DELETE("/posts/:id", postHandler.Delete)

		admin.GET("/messages", messageHandler.ListAll)
		admin.PUT("/messages/:id/read", messageHandler.MarkRead)
		admin.PUT("/messages/:id/reply", messageHandler.Reply)

		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	}

	logger.Log.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(cfg.ServerPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
