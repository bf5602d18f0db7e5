package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pooja-setu/internal/core/auth"
	"pooja-setu/internal/domain"
	resp "pooja-setu/internal/transport/http/response"
)

// Authenticate verifies the gateway-issued bearer token and resolves the
// caller's profile from the store. The token only identifies; the role always
// comes from the profile row, never from the client. The profile may be nil
// for a first-contact identity; /auth/me creates it.
func Authenticate(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}

		u, err := users.FindByIdentityID(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeServerError, "profile lookup failed"))
			return
		}

		c.Set("claims", claims)
		if u != nil {
			c.Set("user", u)
		}
		c.Next()
	}
}

// RequireRoles gates a group on the allow-list of DB-resolved roles.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("user")
		if !ok {
			// A valid token with no profile row yet is treated as not
			// authenticated rather than forbidden: without a row there is no
			// role to measure against the allow-list, and the caller's next
			// step is /auth/me either way.
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthenticated"))
			return
		}
		u := v.(*domain.User)
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
	}
}
