package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/garageservices/garage-backend/internal/config"
	"github.com/garageservices/garage-backend/internal/database"
	"github.com/garageservices/garage-backend/internal/handlers"
	"github.com/garageservices/garage-backend/internal/logging"
	"github.com/garageservices/garage-backend/internal/mailer"
	"github.com/garageservices/garage-backend/internal/middleware"
	"github.com/garageservices/garage-backend/internal/pricing"
	"github.com/garageservices/garage-backend/internal/services"
	"github.com/garageservices/garage-backend/internal/store"
)

const defaultJWTSecret = "garage-service-dev-secret"

func main() {
	cfg := config.Load(".env")

	logger := logging.New(cfg.GetOrDefault("APP_ENV", "development"))
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if missing := cfg.Missing("DB_URL", "DB_USER"); len(missing) > 0 {
		logger.Fatal("database configuration incomplete",
			zap.Strings("missing", missing),
			zap.String("hint", "set DB_URL and DB_USER in the environment or .env"))
	}

	db, err := database.InitDB(cfg.Get("DB_URL"), cfg.Get("DB_USER"), cfg.Get("DB_PASSWORD"))
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get database instance", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	users := store.NewUserStore(db)
	bookings := store.NewBookingStore(db)
	feedback := store.NewFeedbackStore(db)
	settings := store.NewSettingStore(db)

	prices := pricing.NewTable(services.LoadRates(settings))

	emailEnabled := cfg.GetOrDefault("EMAIL_ENABLED", "false") == "true"
	if emailEnabled {
		if _, err := mailer.ReadConfig(cfg); err != nil {
			logger.Warn("email enabled but not configured; confirmation emails will fail", zap.Error(err))
		}
	} else {
		logger.Info("confirmation emails disabled")
	}

	jwtSecret := cfg.Get("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = defaultJWTSecret
		logger.Warn("JWT_SECRET not set, using development default")
	}

	authService := services.NewAuthService(users, jwtSecret)
	bookingService := services.NewBookingService(bookings, prices, mailer.New(cfg), emailEnabled)
	feedbackService := services.NewFeedbackService(feedback)
	settingsService := services.NewSettingsService(settings, prices)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/", handlers.Root)
	r.GET("/app", handlers.AppInfo)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register(authService))
			auth.POST("/login", handlers.Login(authService))
		}

		// Bookings, dashboard and feedback accept guests; a valid token
		// scopes the history and stats to the caller.
		open := api.Group("/")
		open.Use(middleware.AuthOptional(jwtSecret))
		{
			open.POST("/bookings", handlers.CreateBooking(bookingService))
			open.GET("/bookings", handlers.GetBookings(bookingService))
			open.GET("/bookings/:id", handlers.GetBooking(bookingService))
			open.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus(bookingService))
			open.DELETE("/bookings/:id", handlers.DeleteBooking(bookingService))

			open.GET("/dashboard", handlers.GetDashboard(bookingService))
			open.POST("/feedback", handlers.CreateFeedback(feedbackService))

			open.GET("/settings", handlers.GetSettings(settingsService))
			open.PUT("/settings", handlers.SaveSettings(settingsService))
		}

		protected := api.Group("/users")
		protected.Use(middleware.AuthRequired(jwtSecret))
		{
			protected.GET("/me", handlers.GetProfile(users))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
