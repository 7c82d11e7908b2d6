package middleware

import (
	"net/http"
	"strings"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/service"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// roleRank is the single role policy table: a route declares its minimum
// role and every role at or above it passes.
var roleRank = map[string]int{
	entity.RoleViewer: 1,
	entity.RoleEditor: 2,
	entity.RoleAdmin:  3,
}

type AuthMiddleware struct {
	auth  service.AuthService
	store storage.Storage
}

func NewAuthMiddleware(auth service.AuthService, store storage.Storage) *AuthMiddleware {
	return &AuthMiddleware{
		auth:  auth,
		store: store,
	}
}

// RequireAuth extracts the bearer token, validates it, loads the user and
// attaches it to the request context. Any failure is a 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			c.Abort()
			return
		}

		claims, err := m.auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := m.store.GetUserByUsername(c.Request.Context(), claims.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole gates a route on a minimum role. It must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(minRole string) gin.HandlerFunc {
	minRank := roleRank[minRole]
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		if roleRank[user.Role] < minRank {
			c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(entity.RoleAdmin)
}

func (m *AuthMiddleware) RequireEditor() gin.HandlerFunc {
	return m.RequireRole(entity.RoleEditor)
}

// CurrentUser returns the user RequireAuth attached to the context.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
