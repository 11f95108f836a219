package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/momnutri/backend/internal/service"
)

type FoodSafetyHandler struct {
	foods *service.FoodSafetyService
}

func NewFoodSafetyHandler(foods *service.FoodSafetyService) *FoodSafetyHandler {
	return &FoodSafetyHandler{foods: foods}
}

// Search looks up food-safety entries matching ?q=.
func (h *FoodSafetyHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	results, err := h.foods.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search foods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": results})
}

// Get returns the safety entry for an exact food name.
func (h *FoodSafetyHandler) Get(c *gin.Context) {
	entry, err := h.foods.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
