package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrilog/backend/config"
	"github.com/nutrilog/backend/internal/api"
	"github.com/nutrilog/backend/internal/database"
	"github.com/nutrilog/backend/internal/middleware"
	"github.com/nutrilog/backend/internal/router"
	"github.com/nutrilog/backend/internal/server"
	"github.com/nutrilog/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs caching and rate limiting; the API works without it.
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}
	// Local development typically points at a bucket it cannot administer.
	if !config.IsDevelopment() {
		if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
			log.Printf("Failed to apply bucket policy: %v", err)
		}
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	foodService := service.NewFoodService(db)
	logService := service.NewFoodLogService(db, redisClient)
	imageService := service.NewImageService(s3Config)

	authHandler := api.NewAuthHandler(authService)
	profileHandler := api.NewProfileHandler(profileService, imageService)
	foodHandler := api.NewFoodHandler(foodService)
	logHandler := api.NewFoodLogHandler(logService)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     60,
			KeyPrefix: "ratelimit:writes",
		})
	}

	engine := router.SetupRouter(authHandler, profileHandler, foodHandler, logHandler, authService, limiter)
	srv := server.New(engine, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
