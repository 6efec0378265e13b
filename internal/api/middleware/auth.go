// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid" // For parsing UUID from claim

	"placement-portal/internal/models"
	"placement-portal/internal/services"
	"placement-portal/internal/storage"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"  // Key to store user ID in context
	roleCtx             = "role"    // Key to store role in context
	tokenIDCtx          = "tokenID" // Key to store the JWT id in context, for logout
	tokenExpCtx         = "tokenExpiresAt"
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. Revoked
// token ids are rejected even before their natural expiry.
func JWTAuthMiddleware(jwtSecret string, tokens storage.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &services.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Validate the alg is what you expect:
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*services.AuthClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if claims.ID != "" {
			revoked, err := tokens.IsTokenRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				log.Printf("Auth middleware: Error checking token revocation: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate token"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				return
			}
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: Error parsing user ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
			return
		}

		// Store identity in context for downstream handlers
		c.Set(userCtx, userID)
		c.Set(roleCtx, models.Role(claims.Role))
		c.Set(tokenIDCtx, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(tokenExpCtx, claims.ExpiresAt.Time)
		}
		c.Next() // Proceed to the next handler
	}
}

// RequireRole aborts with 403 unless the authenticated role is one of the
// given roles. Must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// Helper function to get user ID from context (optional but convenient)
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetRoleFromContext returns the authenticated role.
func GetRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return "", errors.New("role not found in context")
	}

	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("role in context is of invalid type")
	}

	return role, nil
}

// GetTokenFromContext returns the current token's id and expiry, for logout.
func GetTokenFromContext(c *gin.Context) (string, time.Time, error) {
	tokenIDAny, exists := c.Get(tokenIDCtx)
	if !exists {
		return "", time.Time{}, errors.New("token ID not found in context")
	}
	tokenID, ok := tokenIDAny.(string)
	if !ok {
		return "", time.Time{}, errors.New("token ID in context is of invalid type")
	}

	var expiresAt time.Time
	if expAny, exists := c.Get(tokenExpCtx); exists {
		if exp, ok := expAny.(time.Time); ok {
			expiresAt = exp
		}
	}

	return tokenID, expiresAt, nil
}
