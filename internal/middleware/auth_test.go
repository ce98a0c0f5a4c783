package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bizmatch/backend/internal/middleware"
	"github.com/bizmatch/backend/internal/models"
	"github.com/bizmatch/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func authTestRouter(v middleware.TokenValidator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.RequireAuth(v)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet("user_id")})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := authTestRouter(&stubValidator{})

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.JSONEq(t, `{"error":"Access token required"}`, w.Body.String())
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router := authTestRouter(&stubValidator{err: errors.New("expired")})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	userID := uuid.New()
	router := authTestRouter(&stubValidator{claims: &types.TokenClaims{
		UserID:   userID,
		UserType: models.UserTypeSeller,
	}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestRequireUserType(t *testing.T) {
	validator := &stubValidator{claims: &types.TokenClaims{
		UserID:   uuid.New(),
		UserType: models.UserTypeBuyer,
	}}
	router := authTestRouter(validator,
		middleware.RequireUserType(models.UserTypeSeller, "Only sellers can view buyer profiles"))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Only sellers can view buyer profiles"}`, w.Body.String())

	validator.claims.UserType = models.UserTypeSeller
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
