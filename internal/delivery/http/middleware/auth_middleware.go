package middleware

import (
	"context"
	"net/http"
	"strings"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/crypto"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a user identity. The token
// carries a role claim, but the role used for authorization is always the
// one freshly loaded from the database.
func AuthMiddleware(jwtSecret string, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, apperror.KindUnauthenticated,
				"Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := crypto.ValidateToken(tokenString, jwtSecret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.KindUnauthenticated,
				"Invalid token", nil)
			c.Abort()
			return
		}

		// Fetch fresh user data; a token for a deleted user is worthless.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.KindUnauthenticated,
				"User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		// Usecases read the identity from the request context, never
		// from request bodies.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It runs after
// AuthMiddleware, before any handler touches data: role first, ownership
// later, in that order.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !allowed[role] {
			response.Error(c, http.StatusForbidden, apperror.KindForbidden,
				"Your role is not authorized for this action", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
