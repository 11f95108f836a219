package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/momnutri/backend/config"
	"github.com/momnutri/backend/internal/database"
	"github.com/momnutri/backend/internal/server"
	"github.com/momnutri/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, plan caching disabled: %v", err)
		redisClient = nil
	}

	var provider service.MealPlanProvider
	switch cfg.AIProvider {
	case config.ProviderGemini:
		provider = service.NewGeminiProvider(cfg.AIAPIKey, cfg.AIModel, cfg.AITimeout)
	default:
		provider = service.NewOpenAIProvider(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel, cfg.AITimeout)
	}

	ctx := context.Background()

	var genaiClient *genai.Client
	if cfg.GeminiAPIKey != "" {
		genaiClient, err = genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			log.Printf("Gemini client unavailable, using placeholder images: %v", err)
		}
	} else {
		log.Printf("GEMINI_API_KEY not set, using placeholder images")
	}

	s3Config, err := config.NewS3Config(ctx)
	if err != nil {
		log.Printf("S3 unavailable, storing images locally: %v", err)
		s3Config = nil
	}

	images := service.NewImageService(genaiClient, cfg.GeminiImageModel, s3Config, cfg.ImageDir, cfg.ImageBaseURL, cfg.SecureURLs)

	srv := server.New(cfg, db, redisClient, provider, images)

	errChan := make(chan error, 1)
	go func() {
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
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
