package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/momnutri/backend/internal/models"
	"github.com/momnutri/backend/internal/types"
)

var ErrUserNotFound = errors.New("user not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetUser loads a user by id.
func (s *ProfileService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetProfile returns the user's health profile with the current week filled in
// from the due date.
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.HealthProfile, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user.HealthInfo == nil {
		return nil, nil
	}

	profile := *user.HealthInfo
	if profile.CurrentWeek == 0 && !profile.DueDate.IsZero() {
		profile.CurrentWeek = CurrentWeek(profile.DueDate, time.Now())
	}
	return &profile, nil
}

// UpdateProfile replaces the user's health profile as a whole. Identity fields
// stay untouched.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req *types.UpdateProfileRequest) (*models.HealthProfile, error) {
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		if dueDate, err = time.Parse(time.RFC3339, req.DueDate); err != nil {
			return nil, fmt.Errorf("invalid due date %q", req.DueDate)
		}
	}

	profile := models.HealthProfile{
		DueDate:          dueDate,
		Allergies:        req.Allergies,
		DislikedFoods:    req.DislikedFoods,
		HealthConditions: req.HealthConditions,
	}

	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("health_info", &profile)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	profile.CurrentWeek = CurrentWeek(dueDate, time.Now())
	return &profile, nil
}

// Status reports whether the user exists and has completed profile setup.
func (s *ProfileService) Status(userID uuid.UUID) (hasProfile bool, err error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return false, err
	}
	return user.HealthInfo.Complete(), nil
}
