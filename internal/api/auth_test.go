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
	"github.com/nutrilog/backend/internal/service"
	"github.com/nutrilog/backend/internal/testhelpers/mocks"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	data, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, target, bytes.NewBuffer(data))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestRegisterHandler(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	handler := NewAuthHandler(mockAuth)

	user := &models.User{ID: uuid.New(), Email: "alex@example.com"}
	mockAuth.On("Register", "alex@example.com", "password123", "Alex", "Smith").Return("signed-token", user, nil)

	w := postJSON(t, handler.Register, "/auth/register", gin.H{
		"email":      "alex@example.com",
		"password":   "password123",
		"first_name": "Alex",
		"last_name":  "Smith",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	handler := NewAuthHandler(mockAuth)

	mockAuth.On("Register", "alex@example.com", "password123", "Alex", "Smith").Return("", nil, service.ErrUserExists)

	w := postJSON(t, handler.Register, "/auth/register", gin.H{
		"email":      "alex@example.com",
		"password":   "password123",
		"first_name": "Alex",
		"last_name":  "Smith",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandlerValidation(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	handler := NewAuthHandler(mockAuth)

	// Short password fails binding.
	w := postJSON(t, handler.Register, "/auth/register", gin.H{
		"email":      "alex@example.com",
		"password":   "123",
		"first_name": "Alex",
		"last_name":  "Smith",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	handler := NewAuthHandler(mockAuth)

	mockAuth.On("Login", "alex@example.com", "wrong").Return("", nil, service.ErrInvalidCredentials)

	w := postJSON(t, handler.Login, "/auth/login", gin.H{
		"email":    "alex@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
