// Package mocks provides testify mocks for the service interfaces the HTTP
// handlers depend on.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/nutrition"
	"github.com/nutrilog/backend/internal/service"
	"github.com/nutrilog/backend/internal/types"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(email, password, firstName, lastName string) (string, *models.User, error) {
	args := m.Called(email, password, firstName, lastName)
	var user *models.User
	if v := args.Get(1); v != nil {
		user = v.(*models.User)
	}
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) Login(email, password string) (string, *models.User, error) {
	args := m.Called(email, password)
	var user *models.User
	if v := args.Get(1); v != nil {
		user = v.(*models.User)
	}
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	args := m.Called(userID)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	var claims *types.TokenClaims
	if v := args.Get(0); v != nil {
		claims = v.(*types.TokenClaims)
	}
	return claims, args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	var profile *models.UserProfile
	if v := args.Get(0); v != nil {
		profile = v.(*models.UserProfile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, nutrition.GoalDecision, error) {
	args := m.Called(ctx, userID, req)
	var profile *models.UserProfile
	if v := args.Get(0); v != nil {
		profile = v.(*models.UserProfile)
	}
	return profile, args.Get(1).(nutrition.GoalDecision), args.Error(2)
}

func (m *MockProfileService) SetProfilePicture(ctx context.Context, userID uuid.UUID, url string) error {
	args := m.Called(ctx, userID, url)
	return args.Error(0)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, imageData []byte, contentType string) (string, error) {
	args := m.Called(ctx, userID, imageData, contentType)
	return args.String(0), args.Error(1)
}

type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) Search(ctx context.Context, params service.FoodSearchParams) ([]models.Food, *service.Pagination, error) {
	args := m.Called(ctx, params)
	var foods []models.Food
	if v := args.Get(0); v != nil {
		foods = v.([]models.Food)
	}
	var pagination *service.Pagination
	if v := args.Get(1); v != nil {
		pagination = v.(*service.Pagination)
	}
	return foods, pagination, args.Error(2)
}

func (m *MockFoodService) GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	args := m.Called(ctx, id)
	var food *models.Food
	if v := args.Get(0); v != nil {
		food = v.(*models.Food)
	}
	return food, args.Error(1)
}

func (m *MockFoodService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateFoodRequest) (*models.Food, error) {
	args := m.Called(ctx, userID, req)
	var food *models.Food
	if v := args.Get(0); v != nil {
		food = v.(*models.Food)
	}
	return food, args.Error(1)
}

func (m *MockFoodService) Categories() []service.CategoryOption {
	args := m.Called()
	return args.Get(0).([]service.CategoryOption)
}

type MockFoodLogService struct {
	mock.Mock
}

func (m *MockFoodLogService) Create(ctx context.Context, userID uuid.UUID, params service.CreateLogParams) (*models.FoodLog, error) {
	args := m.Called(ctx, userID, params)
	var entry *models.FoodLog
	if v := args.Get(0); v != nil {
		entry = v.(*models.FoodLog)
	}
	return entry, args.Error(1)
}

func (m *MockFoodLogService) Update(ctx context.Context, userID, logID uuid.UUID, params service.UpdateLogParams) (*models.FoodLog, error) {
	args := m.Called(ctx, userID, logID, params)
	var entry *models.FoodLog
	if v := args.Get(0); v != nil {
		entry = v.(*models.FoodLog)
	}
	return entry, args.Error(1)
}

func (m *MockFoodLogService) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	args := m.Called(ctx, userID, logID)
	return args.Error(0)
}

func (m *MockFoodLogService) Daily(ctx context.Context, userID uuid.UUID, date time.Time) (*service.DailyReport, error) {
	args := m.Called(ctx, userID, date)
	var report *service.DailyReport
	if v := args.Get(0); v != nil {
		report = v.(*service.DailyReport)
	}
	return report, args.Error(1)
}

func (m *MockFoodLogService) Stats(ctx context.Context, userID uuid.UUID, period service.StatsPeriod) (*service.StatsReport, error) {
	args := m.Called(ctx, userID, period)
	var report *service.StatsReport
	if v := args.Get(0); v != nil {
		report = v.(*service.StatsReport)
	}
	return report, args.Error(1)
}
