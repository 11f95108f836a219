package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momnutri/backend/internal/models"
	"github.com/momnutri/backend/internal/testdb"
	"github.com/momnutri/backend/internal/types"
)

func TestProfileUpdateAndGet(t *testing.T) {
	db := testdb.OpenSQLite(t)
	auth := NewAuthService(db, "test-secret")
	svc := NewProfileService(db)

	user, _, err := auth.Register("小美", "mei@example.com", "password123")
	require.NoError(t, err)

	t.Run("fresh user has no profile", func(t *testing.T) {
		profile, err := svc.GetProfile(user.ID)
		require.NoError(t, err)
		assert.Nil(t, profile)

		hasProfile, err := svc.Status(user.ID)
		require.NoError(t, err)
		assert.False(t, hasProfile)
	})

	dueDate := time.Now().AddDate(0, 0, 84).Format("2006-01-02")
	parsedDue, err := time.Parse("2006-01-02", dueDate)
	require.NoError(t, err)
	expectedWeek := CurrentWeek(parsedDue, time.Now())

	t.Run("set profile", func(t *testing.T) {
		profile, err := svc.UpdateProfile(user.ID, &types.UpdateProfileRequest{
			DueDate:       dueDate,
			Allergies:     []string{"花生"},
			DislikedFoods: []string{"芹菜"},
			HealthConditions: models.HealthConditions{
				Anemia: true,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, expectedWeek, profile.CurrentWeek)

		hasProfile, err := svc.Status(user.ID)
		require.NoError(t, err)
		assert.True(t, hasProfile)
	})

	t.Run("get computes current week", func(t *testing.T) {
		profile, err := svc.GetProfile(user.ID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, expectedWeek, profile.CurrentWeek)
		assert.Equal(t, []string{"花生"}, profile.Allergies)
		assert.True(t, profile.HealthConditions.Anemia)
	})

	t.Run("update replaces the profile as a whole", func(t *testing.T) {
		profile, err := svc.UpdateProfile(user.ID, &types.UpdateProfileRequest{
			DueDate: dueDate,
		})
		require.NoError(t, err)
		assert.Empty(t, profile.Allergies)
		assert.False(t, profile.HealthConditions.Anemia)
	})

	t.Run("invalid due date", func(t *testing.T) {
		_, err := svc.UpdateProfile(user.ID, &types.UpdateProfileRequest{DueDate: "soon"})
		assert.Error(t, err)
	})

	t.Run("identity fields untouched", func(t *testing.T) {
		fresh, err := svc.GetUser(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "小美", fresh.Name)
		assert.Equal(t, "mei@example.com", fresh.Email)
	})
}
