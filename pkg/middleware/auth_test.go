package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vlog-hub/internal/entity"
	"vlog-hub/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	tokens map[string]*entity.Actor
}

func (r *stubResolver) ResolveActor(ctx context.Context, token string) (*entity.Actor, error) {
	if actor, ok := r.tokens[token]; ok {
		return actor, nil
	}
	return nil, apperror.ErrInvalidToken
}

func newResolver() *stubResolver {
	return &stubResolver{tokens: map[string]*entity.Actor{
		"good-token": {ID: "user-123", Name: "Alice", Role: entity.RoleCustomer},
	}}
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := setupTestRouter()
	router.Use(AuthMiddleware(newResolver()))
	router.GET("/test", func(c *gin.Context) {
		actor := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.ID, "token": TokenFrom(c), "ctx_user_id": c.GetString("user_id")})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user-123", response["user_id"])
	assert.Equal(t, "good-token", response["token"])
	assert.Equal(t, "user-123", response["ctx_user_id"])
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	router := setupTestRouter()
	router.Use(AuthMiddleware(newResolver()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, string(apperror.CodeUnauthorized), response["code"])
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	router := setupTestRouter()
	router.Use(AuthMiddleware(newResolver()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat good-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupTestRouter()
	router.Use(AuthMiddleware(newResolver()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, string(apperror.CodeInvalidToken), response["code"])
}

func TestOptionalAuth(t *testing.T) {
	router := setupTestRouter()
	router.Use(OptionalAuth(newResolver()))
	router.GET("/test", func(c *gin.Context) {
		if actor := ActorFrom(c); actor != nil {
			c.JSON(http.StatusOK, gin.H{"user_id": actor.ID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": ""})
	})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid token", "Bearer good-token", "user-123"},
		{"invalid token", "Bearer nope", ""},
		{"no header", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			var response map[string]string
			json.Unmarshal(w.Body.Bytes(), &response)
			assert.Equal(t, tt.want, response["user_id"])
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)

	_, ok = bearerToken("abc")
	assert.False(t, ok)
}
