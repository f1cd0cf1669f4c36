package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Sriram31Mech/EventHubPro-1/config"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity is the caller resolved from the bearer token. It carries
// everything downstream handlers need, so no request ever has to hit the
// database just to know who is calling.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

const identityKey = "identity"

// AuthMiddleware verifies the bearer token and stores the caller Identity in
// the request context. The token embeds id/email/role at issuance time;
// role changes only take effect on re-authentication, which is acceptable
// because roles are immutable here.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid claims"})
			return
		}

		userID, _ := claims["user_id"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user_id missing in token"})
			return
		}

		c.Set(identityKey, Identity{UserID: userID, Email: email, Role: role})
		c.Next()
	}
}

// GetIdentity returns the caller identity set by AuthMiddleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := val.(Identity)
	return id, ok
}
