package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dinebook/models"
	"dinebook/utils"
)

// RequireAdmin hanya meloloskan role ADMIN dan SUPER_ADMIN
func RequireAdmin() gin.HandlerFunc {
	return requireRoles(models.RoleAdmin, models.RoleSuperAdmin)
}

// RequireSuperAdmin hanya meloloskan SUPER_ADMIN
func RequireSuperAdmin() gin.HandlerFunc {
	return requireRoles(models.RoleSuperAdmin)
}

func requireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrAccessDenied)
			c.Abort()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, utils.ErrAccessDenied)
		c.Abort()
	}
}
