package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nutrilog/backend/internal/models"
	"github.com/nutrilog/backend/internal/nutrition"
	"github.com/nutrilog/backend/internal/testhelpers/mocks"
)

func TestGetProfileHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockProfiles := new(mocks.MockProfileService)
	handler := NewProfileHandler(mockProfiles, new(mocks.MockImageService))
	userID := uuid.New()

	goal := 1979
	profile := &models.UserProfile{UserID: userID, DailyCalorieGoal: goal}
	mockProfiles.On("GetProfile", mock.Anything, userID).Return(profile, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	c.Set("user_id", userID)

	handler.GetProfile(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profile models.UserProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, goal, resp.Profile.DailyCalorieGoal)
}

func TestGetProfileHandlerUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProfileHandler(new(mocks.MockProfileService), new(mocks.MockImageService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users/profile", nil)

	handler.GetProfile(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileHandlerReportsGoalSource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockProfiles := new(mocks.MockProfileService)
	handler := NewProfileHandler(mockProfiles, new(mocks.MockImageService))
	userID := uuid.New()

	profile := &models.UserProfile{UserID: userID, DailyCalorieGoal: 1979}
	decision := nutrition.GoalDecision{Source: nutrition.GoalSourceEstimated, Calories: 1979}
	mockProfiles.On("UpdateProfile", mock.Anything, userID, mock.Anything).Return(profile, decision, nil)

	body, _ := json.Marshal(gin.H{
		"age":            30,
		"gender":         "male",
		"weight":         70,
		"height":         175,
		"activity_level": "sedentary",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/users/profile", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)

	handler.UpdateProfile(c)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		GoalSource string `json:"goal_source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "estimated", resp.GoalSource)
}

func TestUpdateProfileHandlerValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockProfiles := new(mocks.MockProfileService)
	handler := NewProfileHandler(mockProfiles, new(mocks.MockImageService))

	// Age below the allowed minimum fails binding before the service runs.
	body, _ := json.Marshal(gin.H{"age": 7})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/users/profile", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uuid.New())

	handler.UpdateProfile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProfiles.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadProfilePicture(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	t.Run("uploads and saves url", func(t *testing.T) {
		mockProfiles := new(mocks.MockProfileService)
		mockImages := new(mocks.MockImageService)
		handler := NewProfileHandler(mockProfiles, mockImages)

		url := "https://images.test/pic.jpg"
		mockImages.On("UploadProfilePicture", mock.Anything, userID, imageBytes, "image/jpeg").Return(url, nil)
		mockProfiles.On("SetProfilePicture", mock.Anything, userID, url).Return(nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/users/profile/picture", bytes.NewReader(imageBytes))
		c.Request.Header.Set("Content-Type", "image/jpeg")
		c.Set("user_id", userID)

		handler.UploadProfilePicture(c)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		mockImages.AssertExpectations(t)
		mockProfiles.AssertExpectations(t)
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		handler := NewProfileHandler(new(mocks.MockProfileService), new(mocks.MockImageService))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/users/profile/picture", bytes.NewReader(imageBytes))
		c.Request.Header.Set("Content-Type", "application/pdf")
		c.Set("user_id", userID)

		handler.UploadProfilePicture(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		handler := NewProfileHandler(new(mocks.MockProfileService), new(mocks.MockImageService))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/users/profile/picture", bytes.NewReader(nil))
		c.Request.Header.Set("Content-Type", "image/png")
		c.Set("user_id", userID)

		handler.UploadProfilePicture(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
