package types

import "github.com/momnutri/backend/internal/models"

// RegisterRequest represents the signup request body
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest sets or replaces the user's health profile.
// Identity fields (name, email) are immutable and not accepted here.
type UpdateProfileRequest struct {
	DueDate          string                  `json:"dueDate" binding:"required"`
	Allergies        []string                `json:"allergies"`
	DislikedFoods    []string                `json:"dislikedFoods"`
	HealthConditions models.HealthConditions `json:"healthConditions"`
}

// GeneratePlanRequest optionally pins the plan date (YYYY-MM-DD, default today).
type GeneratePlanRequest struct {
	Date string `json:"date"`
}
