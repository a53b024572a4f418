package middleware

import (
	"net/http"
	"strings"

	"passgate-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authContextKey = "auth_context"

// AuthRequired verifies the Bearer token and stores the caller's
// identity in the gin context. Set AUTH_DISABLED only for local
// development against a seeded database.
func AuthRequired(secret []byte, disabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		rc := domain.RequestContext{}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["user_id"].(float64); ok {
				rc.UserID = int64(v)
			}
			if v, ok := claims["role"].(string); ok {
				rc.Role = v
			}
		}
		c.Set(authContextKey, rc)
		c.Next()
	}
}

// GetAuthContext returns the authenticated caller, if any.
func GetAuthContext(c *gin.Context) (domain.RequestContext, bool) {
	if v, ok := c.Get(authContextKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc, true
		}
	}
	return domain.RequestContext{}, false
}
