package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forkwell/mealvault/backend/config"
	"github.com/forkwell/mealvault/backend/internal/api"
	"github.com/forkwell/mealvault/backend/internal/database"
	"github.com/forkwell/mealvault/backend/internal/repository"
	"github.com/forkwell/mealvault/backend/internal/router"
	"github.com/forkwell/mealvault/backend/internal/server"
	"github.com/forkwell/mealvault/backend/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	}

	authService := service.NewAuthService(db, redisClient, cfg.JWTSecret)
	if err := authService.SeedDemoUser(context.Background()); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	repo := repository.NewRecipeRepository(
		db,
		repository.NewIngredientStore(db),
		repository.NewNutritionStore(db),
	)

	var imageService *service.ImageService
	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		imageService = service.NewImageService(s3Config)
	}

	var uploader api.ImageUploader
	if imageService != nil {
		uploader = imageService
	}
	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(repo),
		api.NewMealPlanHandler(repo),
		api.NewImageHandler(repo, uploader),
		authService,
	)
	srv := server.New(cfg, engine)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
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
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
