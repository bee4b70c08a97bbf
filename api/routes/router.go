package routes

import (
	"context"
	"net/http"
	"time"

	"campora/internal/amenities"
	"campora/internal/analytics"
	"campora/internal/auth"
	"campora/internal/cart"
	"campora/internal/listings"
	"campora/internal/notifications"
	"campora/internal/policies"
	"campora/internal/realtime"
	"campora/internal/reservations"
	"campora/internal/reviews"
	"campora/internal/shared/config"
	"campora/internal/shared/database"
	"campora/internal/shared/utils/response"
	"campora/pkg/cache"
	"campora/pkg/logger"
	"campora/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies collects everything the router needs from main
type Dependencies struct {
	Config              *config.Config
	DB                  *database.DB
	Logger              *logger.Logger
	NotificationService *notifications.Service
	Hub                 *realtime.Hub
	CompletionJob       *reservations.CompletionJob
}

// Setup builds the Gin engine with all middleware and module routes wired,
// returning the engine and the populated dependencies for lifecycle control
func Setup(cfg *config.Config, db *database.DB, appLogger *logger.Logger) (*gin.Engine, *Dependencies, error) {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(appLogger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting rides on Redis; route classes get separate budgets
	rateLimiter := ratelimit.NewRateLimiter(db.GetRedisClient(), &ratelimit.Config{
		Enabled:                     cfg.RateLimit.Enabled,
		WindowDuration:              cfg.RateLimit.WindowDuration,
		DefaultRequests:             cfg.RateLimit.DefaultRequests,
		PublicRequests:              cfg.RateLimit.PublicRequests,
		AuthRequests:                cfg.RateLimit.AuthRequests,
		ReservationRequests:         cfg.RateLimit.ReservationRequests,
		ReservationCriticalRequests: cfg.RateLimit.ReservationCriticalRequests,
		AdminRequests:               cfg.RateLimit.AdminRequests,
		AnalyticsRequests:           cfg.RateLimit.AnalyticsRequests,
		UserRequests:                cfg.RateLimit.UserRequests,
		HealthRequests:              cfg.RateLimit.HealthRequests,
		WhitelistedIPs:              cfg.RateLimit.WhitelistedIPs,
	})
	router.Use(ratelimit.Middleware(rateLimiter))

	// Uploaded listing images are served straight from disk
	router.Static("/uploads", cfg.Upload.Path)

	gormDB := db.GetPostgreSQL()
	cacheService := cache.NewService(db.GetRedisClient())

	// Repositories
	authRepo := auth.NewRepository(gormDB)
	amenityRepo := amenities.NewRepository(gormDB)
	listingRepo := listings.NewRepository(gormDB)
	policyRepo := policies.NewRepository(gormDB)
	reservationRepo := reservations.NewRepository(gormDB)
	reviewRepo := reviews.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)

	// Services
	authService := auth.NewService(authRepo, cacheService, cfg, appLogger)
	amenityService := amenities.NewService(amenityRepo, cacheService, appLogger)
	listingService := listings.NewService(listingRepo, amenityRepo, cacheService, cfg, appLogger)
	policyService := policies.NewService(policyRepo, appLogger)
	reservationService := reservations.NewService(reservationRepo, listingRepo, policyService, cacheService, cfg, appLogger)
	cartService := cart.NewService(reservationService, cacheService, cfg, appLogger)
	reviewService := reviews.NewService(reviewRepo, reservationService, cacheService, appLogger)
	analyticsService := analytics.NewService(analyticsRepo, cacheService, appLogger)

	// Notification pipeline and websocket hub
	notificationService, err := notifications.NewService(cfg, authRepo, appLogger)
	if err != nil {
		return nil, nil, err
	}
	hub := realtime.NewHub(appLogger)

	// Cross-module wiring; setters avoid import cycles
	listingService.SetDemandProvider(reservationService)
	listingService.SetRatingProvider(reviewService)
	reservationService.SetNotifier(notificationService)
	reservationService.SetRealtimePublisher(hub)
	authService.SetWelcomeNotifier(notificationService)

	// Controllers
	authController := auth.NewController(authService)
	amenityController := amenities.NewController(amenityService)
	listingController := listings.NewController(listingService, cfg)
	policyController := policies.NewController(policyService)
	reservationController := reservations.NewController(reservationService)
	cartController := cart.NewController(cartService)
	reviewController := reviews.NewController(reviewService)
	analyticsController := analytics.NewController(analyticsService)
	realtimeController := realtime.NewController(hub, cfg)

	registerHealthRoutes(router, db)

	api := router.Group(cfg.GetAPIBasePath())
	{
		auth.RegisterRoutes(api, authController, cfg)
		amenities.RegisterRoutes(api, amenityController, cfg)
		listings.RegisterRoutes(api, listingController, cfg)
		policies.RegisterRoutes(api, policyController, cfg)
		reservations.RegisterRoutes(api, reservationController, cfg)
		cart.RegisterRoutes(api, cartController, cfg)
		reviews.RegisterRoutes(api, reviewController, cfg)
		analytics.RegisterRoutes(api, analyticsController, cfg)
		realtime.RegisterRoutes(api, realtimeController)
	}

	deps := &Dependencies{
		Config:              cfg,
		DB:                  db,
		Logger:              appLogger,
		NotificationService: notificationService,
		Hub:                 hub,
		CompletionJob:       reservations.NewCompletionJob(reservationService, cfg, appLogger),
	}

	return router, deps, nil
}

func registerHealthRoutes(router *gin.Engine, db *database.DB) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	healthHandler := func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		health := db.HealthCheck(ctx)
		status := http.StatusOK
		for _, state := range health {
			if state != "healthy" {
				status = http.StatusServiceUnavailable
				break
			}
		}

		response.RespondJSON(c, "success", status, "Health check", gin.H{
			"services":  health,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}, nil)
	}

	router.GET("/health", healthHandler)
	router.GET("/status", healthHandler)
}

// requestLogger logs each request after completion
func requestLogger(appLogger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		appLogger.LogHTTPRequest(c, time.Since(start))
	}
}
