package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momnutri/backend/internal/models"
	"github.com/momnutri/backend/internal/testdb"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(testdb.OpenSQLite(t), "test-secret")

	user, token, err := svc.Register("小美", "mei@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, _, err := svc.Register("别人", "mei@example.com", "password456")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("login with correct credentials", func(t *testing.T) {
		logged, token, err := svc.Login("mei@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, logged.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, _, err := svc.Login("mei@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, _, err := svc.Login("ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthRegisterDuplicateInsert(t *testing.T) {
	svc := NewAuthService(testdb.OpenSQLite(t), "test-secret")

	user, _, err := svc.Register("小美", "mei@example.com", "password123")
	require.NoError(t, err)

	// Soft-deleting the account makes the pre-insert lookup miss it while
	// the unique index still holds the email, the same shape as losing a
	// concurrent signup race. The rejected insert must read as a taken
	// email, not a storage error.
	require.NoError(t, svc.db.Delete(&models.User{}, "id = ?", user.ID).Error)

	_, _, err = svc.Register("新用户", "mei@example.com", "password456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthValidateToken(t *testing.T) {
	svc := NewAuthService(testdb.OpenSQLite(t), "test-secret")

	user, token, err := svc.Register("小美", "mei@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid token round-trips the identity", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "mei@example.com", claims.Email)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewAuthService(svc.db, "other-secret")
		_, otherToken, err := other.Register("小红", "hong@example.com", "password123")
		require.NoError(t, err)
		_, err = svc.ValidateToken(otherToken)
		assert.Error(t, err)
	})
}
