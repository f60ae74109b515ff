// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"tradenet/utils"
)

// TokenVerifier is the slice of the identity provider the middleware needs.
// *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware verifies the bearer ID token against the identity provider
// and sets "orgID" in the request context. Verified token hashes are cached
// in Redis so repeated requests skip the provider round trip. Requests
// without a valid token are rejected before any handler work runs.
func AuthMiddleware(verifier TokenVerifier, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		ctx := c.Request.Context()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		if authCache != nil {
			if cachedOrg, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cachedOrg != "" {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("orgID", cachedOrg)
				c.Next()
				return
			}
		}

		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		token, err := verifier.VerifyIDToken(verifyCtx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, token.UID, utils.AuthCacheTTL).Err()
		}

		c.Set("orgID", token.UID)
		c.Next()
	}
}

// OrgID returns the authenticated organization identifier set by
// AuthMiddleware.
func OrgID(c *gin.Context) string {
	v, _ := c.Get("orgID")
	id, _ := v.(string)
	return id
}
