package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilog/backend/internal/models"
)

func TestRegisterCreatesDefaultProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, user, err := svc.Register("Alex@Example.com", "password123", "Alex", "Smith")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Email is stored lowercased.
	assert.Equal(t, "alex@example.com", user.Email)

	require.NotNil(t, user.Profile)
	assert.Equal(t, models.DefaultDailyCalorieGoal, user.Profile.DailyCalorieGoal)
	assert.Equal(t, models.ActivityModeratelyActive, user.Profile.ActivityLevel)
	assert.Equal(t, models.GoalMaintainWeight, user.Profile.Goal)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register("alex@example.com", "password123", "Alex", "Smith")
	require.NoError(t, err)

	_, _, err = svc.Register("ALEX@example.com", "otherpass", "Other", "Person")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Register("alex@example.com", "password123", "Alex", "Smith")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := svc.Login("alex@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		require.NotNil(t, user.Profile)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("alex@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login("nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, user, err := svc.Register("alex@example.com", "password123", "Alex", "Smith")
	require.NoError(t, err)

	t.Run("valid token round-trips claims", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(db, "other-secret")
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
