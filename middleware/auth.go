package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

const (
	ctxUserID = "auth_user_id"
	ctxEmail  = "auth_email"
	ctxRole   = "auth_role"
)

func setIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxRole, claims.Role)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := utils.ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := utils.ParseToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// RequireAdmin rejects everything but a valid ADMIN token.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := utils.ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := utils.ParseToken(raw)
		if err != nil || claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// guests through untouched. An invalid token is treated as absent.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := utils.ExtractBearerToken(c.GetHeader("Authorization")); ok {
			if claims, err := utils.ParseToken(raw); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or false for guests.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// IsAdmin reports whether the request carries an ADMIN identity.
func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get(ctxRole)
	if !ok {
		return false
	}
	role, _ := v.(string)
	return role == models.RoleAdmin
}
