package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/barberfactory/barberfactory-api/internal/config"
	"github.com/barberfactory/barberfactory-api/internal/identity"
)

const (
	ContextUserID   = "userID"
	ContextIsBarber = "isBarber"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		isBarber, _ := claims["isBarber"].(bool)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextIsBarber, isBarber)

		c.Next()
	}
}

// IdentityFrom builds the caller identity resolved by AuthMiddleware.
// Must only be called on routes behind it.
func IdentityFrom(c *gin.Context) identity.Identity {
	return identity.Identity{
		UserID:   c.MustGet(ContextUserID).(uint),
		IsBarber: c.MustGet(ContextIsBarber).(bool),
	}
}
