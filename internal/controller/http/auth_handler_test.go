package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vlog-hub/internal/entity"
	"vlog-hub/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestSignup_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/signup", handler.Signup)

	mockUseCase.On("Register", "Alice", "alice@example.com", "secret").
		Return(&entity.User{ID: "user-123", Name: "Alice", Role: entity.RoleCustomer}, nil)

	w := httptest.NewRecorder()
	body := `{"name":"Alice","email":"alice@example.com","password":"secret","role":"admin"}`
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user-123", response["userId"])
	mockUseCase.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/signup", handler.Signup)

	mockUseCase.On("Register", "Alice", "alice@example.com", "secret").Return(nil, apperror.ErrDuplicateEmail)

	w := httptest.NewRecorder()
	body := `{"name":"Alice","email":"alice@example.com","password":"secret"}`
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "DUPLICATE_EMAIL", response.Code)
}

func TestSignup_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/signup", handler.Signup)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBufferString(`{"email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register")
}

func TestLogin_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	user := &entity.User{ID: "user-123", Name: "Alice", Role: entity.RoleAdmin}
	mockUseCase.On("Login", "alice@example.com", "secret").Return(user, "signed-token", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"alice@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response LoginResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "signed-token", response.Token)
	assert.Equal(t, "user-123", response.UserID)
	assert.Equal(t, "Alice", response.Username)
	assert.Equal(t, entity.RoleAdmin, response.UserType)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "alice@example.com", "wrong").Return(nil, "", apperror.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"email":"alice@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "INVALID_CREDENTIALS", response.Code)
}

func TestLogout(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	actor := &entity.Actor{ID: "user-123", Name: "Alice", Role: entity.RoleCustomer}

	router := setupTestRouter()
	router.POST("/auth/logout", as(actor, handler.Logout))

	mockUseCase.On("Logout", "token-user-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/logout", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestProfile(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	actor := &entity.Actor{ID: "user-123", Name: "Alice", Role: entity.RoleCustomer}

	router := setupTestRouter()
	router.GET("/auth/profile", as(actor, handler.Profile))

	mockUseCase.On("Profile", actor).Return(&entity.User{ID: "user-123", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/profile", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")
	var response map[string]map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "alice@example.com", response["user"]["email"])
}
