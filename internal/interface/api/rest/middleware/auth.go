package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/domain/role"
	"marketplace-admin-api/internal/infrastructure/jwt"
)

const (
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserEmail, claims.Email)

		c.Next()
	}
}

// RequireRole resolves the session email against the live staff stores on
// every request, so a deleted or demoted account loses access immediately
// even while its token is still valid. Role comparison is case-insensitive.
func RequireRole(resolver ports.RoleResolver, logger *zap.Logger, want string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxUserEmail)

		resolved, err := resolver.ResolveRole(c.Request.Context(), email)
		if err != nil {
			logger.Error("ResolveRole() error", zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "internal server error"},
			)
			return
		}
		if resolved == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "unknown account"},
			)
			return
		}
		if !role.Satisfies(resolved, want) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "insufficient role"},
			)
			return
		}

		c.Set(CtxUserRole, resolved)

		c.Next()
	}
}
