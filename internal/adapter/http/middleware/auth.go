package middleware

import (
	"fmt"
	"os"
	"strings"

	"heavyhaul_shop/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authContextKey = "authContext"

// StaffClaims is the shape of the external auth provider's token. Only the
// subject and role claims are consumed here; identity itself is managed
// upstream.
type StaffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("AUTH_JWT_SECRET"))
}

// Auth parses the bearer token, if any, into an AuthorizationContext for the
// request. It never aborts: endpoints that require a role check it in the use
// case layer, and the customer decision endpoint stays reachable without a
// token.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" || len(jwtSecret()) == 0 {
			c.Next()
			return
		}

		claims := &StaffClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret(), nil
		})
		if err != nil || !parsed.Valid {
			c.Next()
			return
		}

		c.Set(authContextKey, entities.AuthorizationContext{
			UserID: claims.Subject,
			Role:   entities.Role(claims.Role),
		})
		c.Next()
	}
}

// AuthFromContext returns the request's AuthorizationContext. A request
// without a valid token yields the zero context, which fails every permission
// check.
func AuthFromContext(c *gin.Context) entities.AuthorizationContext {
	if v, ok := c.Get(authContextKey); ok {
		if auth, ok := v.(entities.AuthorizationContext); ok {
			return auth
		}
	}
	return entities.AuthorizationContext{}
}
