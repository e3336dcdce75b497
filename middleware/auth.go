package middleware

import (
	"net/http"
	"strings"

	"github.com/AzharuddinMalik/MAD-ERP/models"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores its claims on the
// context under "user".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized access",
				"code":    "MISSING_TOKEN",
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized access",
				"code":    "MISSING_TOKEN",
			})
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Logger.Error().Err(err).Msg("token validation failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid token: " + err.Error(),
				"code":    "INVALID_TOKEN",
			})
			return
		}

		if claims["id"] == nil || claims["role"] == nil || claims["username"] == nil {
			utils.Logger.Warn().Interface("claims", claims).Msg("token payload missing required fields")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "token missing required fields",
				"code":    "INVALID_TOKEN",
			})
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the caller holds one of the given
// roles. Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthenticated",
				"code":    "UNAUTHENTICATED",
			})
			return
		}

		for _, role := range roles {
			if user.Role == string(role) {
				c.Next()
				return
			}
		}

		utils.Logger.Info().
			Str("username", user.Username).
			Str("role", user.Role).
			Str("path", c.Request.URL.Path).
			Msg("role not permitted")

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "insufficient permissions",
			"code":    "INSUFFICIENT_PERMISSION",
		})
	}
}

// PermissionMiddleware checks the role permission table for a resource
// and action pair. Must run after AuthMiddleware.
func PermissionMiddleware(resource string, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthenticated",
				"code":    "UNAUTHENTICATED",
			})
			return
		}

		if !utils.HasPermission(models.UserRole(user.Role), resource, action) {
			utils.Logger.Info().
				Str("username", user.Username).
				Str("role", user.Role).
				Str("resource", resource).
				Str("action", action).
				Msg("permission denied")

			utils.HandleError(c, utils.CreateForbiddenError())
			c.Abort()
			return
		}

		c.Next()
	}
}
