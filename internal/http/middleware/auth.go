package middleware

import (
	"net/http"
	"strings"

	"travelbackend/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "auth_user_id"
	userRoleKey = "auth_role"
)

func parseBearer(c *gin.Context, secret []byte) (int64, string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return 0, "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" {
		return 0, "", false
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, "", false
	}
	role, _ := claims["role"].(string)
	return int64(uid), role, true
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, role, ok := parseBearer(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		c.Set(userIDKey, uid)
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// OptionalAuth attaches the caller's identity when a valid token is present
// but lets anonymous requests through.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid, role, ok := parseBearer(c, secret); ok {
			c.Set(userIDKey, uid)
			c.Set(userRoleKey, role)
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or 0 when anonymous.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetUserRole returns the authenticated role, or "" when anonymous.
func GetUserRole(c *gin.Context) string {
	if v, ok := c.Get(userRoleKey); ok {
		if r, ok := v.(string); ok {
			return r
		}
	}
	return ""
}
