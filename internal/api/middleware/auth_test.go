package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"placement-portal/internal/api/middleware"
	mock_storage "placement-portal/internal/mocks"
	"placement-portal/internal/models"
	"placement-portal/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, userID uuid.UUID, role models.Role, tokenID string, expiresIn time.Duration) string {
	t.Helper()
	claims := &services.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupAuthRouter(t *testing.T) (*mock_storage.MockTokenStore, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tokens := mock_storage.NewMockTokenStore(ctrl)
	router := gin.New()
	router.GET("/protected", middleware.JWTAuthMiddleware(testSecret, tokens), func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		require.NoError(t, err)
		role, err := middleware.GetRoleFromContext(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	router.GET("/recruiter-only",
		middleware.JWTAuthMiddleware(testSecret, tokens),
		middleware.RequireRole(models.RoleRecruiter),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return tokens, router
}

func performRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	t.Run("Valid Token", func(t *testing.T) {
		tokens, router := setupAuthRouter(t)
		token := signToken(t, userID, models.RoleStudent, "jti-1", time.Hour)
		tokens.EXPECT().IsTokenRevoked(gomock.Any(), "jti-1").Return(false, nil).Times(1)

		recorder := performRequest(router, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), userID.String())
	})

	t.Run("Missing Header", func(t *testing.T) {
		_, router := setupAuthRouter(t)
		recorder := performRequest(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		_, router := setupAuthRouter(t)
		recorder := performRequest(router, "/protected", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		_, router := setupAuthRouter(t)
		token := signToken(t, userID, models.RoleStudent, "jti-2", -time.Minute)

		recorder := performRequest(router, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "expired")
	})

	t.Run("Wrong Signature", func(t *testing.T) {
		_, router := setupAuthRouter(t)
		claims := &services.AuthClaims{
			Role: string(models.RoleStudent),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		recorder := performRequest(router, "/protected", "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Revoked Token", func(t *testing.T) {
		tokens, router := setupAuthRouter(t)
		token := signToken(t, userID, models.RoleStudent, "jti-3", time.Hour)
		tokens.EXPECT().IsTokenRevoked(gomock.Any(), "jti-3").Return(true, nil).Times(1)

		recorder := performRequest(router, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "revoked")
	})
}

func TestRequireRole(t *testing.T) {
	userID := uuid.New()

	t.Run("Allowed Role", func(t *testing.T) {
		tokens, router := setupAuthRouter(t)
		token := signToken(t, userID, models.RoleRecruiter, "jti-4", time.Hour)
		tokens.EXPECT().IsTokenRevoked(gomock.Any(), "jti-4").Return(false, nil).Times(1)

		recorder := performRequest(router, "/recruiter-only", "Bearer "+token)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Wrong Role", func(t *testing.T) {
		tokens, router := setupAuthRouter(t)
		token := signToken(t, userID, models.RoleStudent, "jti-5", time.Hour)
		tokens.EXPECT().IsTokenRevoked(gomock.Any(), "jti-5").Return(false, nil).Times(1)

		recorder := performRequest(router, "/recruiter-only", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
