package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momnutri/backend/internal/api"
	"github.com/momnutri/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	planHandler *api.PlanHandler,
	recipeHandler *api.RecipeHandler,
	foodHandler *api.FoodSafetyHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(validator), authHandler.Logout)
	}

	recipes := v1.Group("/recipes")
	{
		recipes.GET("", recipeHandler.List)
		recipes.GET("/:name", recipeHandler.Get)
	}

	v1.GET("/food/search", foodHandler.Search)
	v1.GET("/food/:name", foodHandler.Get)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.GET("/user/status", authHandler.Status)

		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		diet := protected.Group("/diet")
		{
			diet.POST("/generate", planHandler.Generate)
			diet.GET("/plan", planHandler.GetPlan)
		}
	}

	return router
}
