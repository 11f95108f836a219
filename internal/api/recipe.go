package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momnutri/backend/internal/models"
	"github.com/momnutri/backend/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// recipeSummary is the projection used by the listing endpoint.
type recipeSummary struct {
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	ImageURL        string           `json:"image"`
	PreparationTime int              `json:"preparationTime"`
	CookingTime     int              `json:"cookingTime"`
	Nutrition       models.Nutrition `json:"nutrition"`
}

// List returns recipes newest first, with optional ?category=, ?trimester=
// and ?q= filters.
func (h *RecipeHandler) List(c *gin.Context) {
	filter := service.ListFilter{
		Category:  c.Query("category"),
		Trimester: c.Query("trimester"),
		Search:    c.Query("q"),
	}

	recipes, err := h.recipes.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}

	summaries := make([]recipeSummary, 0, len(recipes))
	for _, r := range recipes {
		summaries = append(summaries, recipeSummary{
			Name:            r.Name,
			Category:        r.Category,
			ImageURL:        r.ImageURL,
			PreparationTime: r.PreparationTime,
			CookingTime:     r.CookingTime,
			Nutrition:       r.Nutrition,
		})
	}
	c.JSON(http.StatusOK, gin.H{"recipes": summaries})
}

// Get returns the full recipe for an exact name.
func (h *RecipeHandler) Get(c *gin.Context) {
	name := c.Param("name")
	recipe, err := h.recipes.GetByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}
