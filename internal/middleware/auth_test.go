package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devconnector-be/internal/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(jwtService *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService), func(c *gin.Context) {
		userID, _ := c.Get(UserIDKey)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	router := newAuthRouter(jwt.NewJWTService("secret", 10*time.Minute))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"msg":"No token, authorisation denied"}`, rec.Body.String())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newAuthRouter(jwt.NewJWTService("secret", 10*time.Minute))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, "not-a-real-token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"msg":"Token is not valid"}`, rec.Body.String())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := jwt.NewJWTService("secret", -1*time.Minute)
	token, err := expired.GenerateToken("user-1")
	require.NoError(t, err)

	router := newAuthRouter(jwt.NewJWTService("secret", 10*time.Minute))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"msg":"Token is not valid"}`, rec.Body.String())
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", 10*time.Minute)
	token, err := jwtService.GenerateToken("user-1")
	require.NoError(t, err)

	router := newAuthRouter(jwtService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"user_id":"user-1"}`, rec.Body.String())
}
