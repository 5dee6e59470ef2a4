package middleware

import (
	"net/http"
	"strings"
	"time"

	userRepo "hotelify/database/repository/user"
	"hotelify/models"
	"hotelify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	authCachePrefix = "auth:user:"
	authCacheTTL    = time.Hour
)

// bearerToken extracts the token from the Authorization header, or "".
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthUserMiddleware validates a user bearer token, confirms the account
// still exists, and stores the requester identity on the context for
// handlers. Account lookups are cached in Redis; a cache failure falls back
// to the database rather than rejecting the request.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing or invalid Authorization header",
			})
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || role != utils.RoleUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized",
			})
			return
		}

		ctx := c.Request.Context()
		cacheKey := authCachePrefix + subject
		authCache := utils.GetCacheClient()

		if authCache != nil {
			name, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
				c.Set("requester", models.Requester{ID: subject, Name: name, Admin: false})
				c.Next()
				return
			}
			if err != redis.Nil {
				zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		// The token may outlive the account; confirm the user still exists.
		usr, err := users.GetByID(subject)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized",
			})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, usr.Name, authCacheTTL).Err()
		}

		c.Set("requester", models.Requester{ID: usr.ID, Name: usr.Name, Admin: false})
		c.Next()
	}
}
