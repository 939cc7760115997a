// file: middlewares/auth.go
package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/builders-garden/just-frame-it/utils"
)

// ContextFid is the gin context key the authenticated fid is stored under.
const ContextFid = "fid"

// JWTAuthMiddleware requires a valid bearer session token and derives the
// caller's fid from its claims. The fid never comes from a client-supplied
// header: earlier deployments trusted an x-user-fid header, which let any
// caller impersonate any account.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.Unauthenticated(c, "missing or malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			utils.Unauthenticated(c, "invalid token")
			c.Abort()
			return
		}
		c.Set(ContextFid, claims.Fid)
		c.Next()
	}
}

// JWTTryAuthMiddleware parses the token when present but lets the request
// through either way. Handlers behind it treat a missing fid as anonymous.
func JWTTryAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		if claims, err := utils.ParseToken(tokenString, secret); err == nil {
			c.Set(ContextFid, claims.Fid)
		}
		c.Next()
	}
}

// Fid returns the authenticated fid from the context.
func Fid(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(ContextFid)
	if !exists {
		return 0, false
	}
	fid, ok := v.(uint64)
	return fid, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
