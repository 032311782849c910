package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	userRepo "studeaf/database/repository/user"
	"studeaf/models"
	"studeaf/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// authContextKey is where the verified identity lives in the gin context.
const authContextKey = "authContext"

// GetAuthContext returns the verified identity set by JWTAuthMiddleware.
func GetAuthContext(c *gin.Context) (models.AuthContext, bool) {
	val, exists := c.Get(authContextKey)
	if !exists {
		return models.AuthContext{}, false
	}
	auth, ok := val.(models.AuthContext)
	return auth, ok
}

// JWTAuthMiddleware validates the bearer token and resolves the caller's
// identity into an AuthContext. The token hash is checked against the Redis
// auth cache; on a miss the account is re-verified against the database and
// the cache is repopulated.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}

		userID, roleStr, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		role, err := models.ParseRole(roleStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + strconv.FormatInt(userID, 10)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			if cachedHash != computedHash {
				// A newer login superseded this token.
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
		case err == redis.Nil:
			// Cache miss: confirm the account still exists and is active.
			usr, err := repo.GetByID(userID)
			if err != nil || !usr.IsActive {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
				return
			}
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		default:
			utils.GetLogger().Warn("auth cache unavailable, falling back to database")
			usr, dbErr := repo.GetByID(userID)
			if dbErr != nil || !usr.IsActive {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication error"})
				return
			}
		}

		c.Set(authContextKey, models.AuthContext{UserID: userID, Role: role})
		c.Next()
	}
}
