package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/momnutri/backend/internal/service"
	"github.com/momnutri/backend/internal/types"
)

// generateBudget bounds the whole generation request end to end: provider
// retries, image generation and persistence included.
const generateBudget = 180 * time.Second

type PlanHandler struct {
	plans   *service.DietPlanService
	profile *service.ProfileService
}

func NewPlanHandler(plans *service.DietPlanService, profile *service.ProfileService) *PlanHandler {
	return &PlanHandler{plans: plans, profile: profile}
}

// Generate creates (or regenerates) the plan for the requested day.
func (h *PlanHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	user, err := h.profile.GetUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateBudget)
	defer cancel()

	view, err := h.plans.GenerateDaily(ctx, user, date)
	if err != nil {
		if errors.Is(err, service.ErrProfileIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please complete your health profile first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate meal plan"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetPlan fetches the stored plan for a day (?date=YYYY-MM-DD, default today).
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	view, err := h.plans.GetPlan(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no diet plan for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load diet plan"})
		return
	}
	c.JSON(http.StatusOK, view)
}
