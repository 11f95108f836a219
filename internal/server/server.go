package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/momnutri/backend/config"
	"github.com/momnutri/backend/internal/api"
	"github.com/momnutri/backend/internal/router"
	"github.com/momnutri/backend/internal/service"
)

// Server wires the services behind the HTTP surface.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
}

// New assembles all services and routes. An image service without a Gemini
// client gives recipes placeholder image URLs.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, provider service.MealPlanProvider, images *service.ImageService) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	recipeService := service.NewRecipeService(db, images)
	planService := service.NewDietPlanService(db, redisClient, provider, recipeService, cfg.UseBackupData)
	foodService := service.NewFoodSafetyService(db)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, profileService),
		api.NewProfileHandler(profileService),
		api.NewPlanHandler(planService, profileService),
		api.NewRecipeHandler(recipeService),
		api.NewFoodSafetyHandler(foodService),
		authService,
	)

	return &Server{
		cfg:    cfg,
		engine: engine,
	}
}

// Start runs the HTTP server until it errors or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
