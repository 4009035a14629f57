package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nutrilog/backend/internal/database"
	"github.com/nutrilog/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func registerTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	authSvc := NewAuthService(db, "test-secret")
	_, user, err := authSvc.Register(email, "password123", "Test", "User")
	require.NoError(t, err)
	return user
}
