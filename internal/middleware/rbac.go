package middleware

import (
	"net/http"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/gin-gonic/gin"
)

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Admin bypasses all role checks
		if GetCurrentUserIsAdmin(c) {
			c.Next()
			return
		}
		userRole := GetCurrentUserRole(c)
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    40301,
			"message": "insufficient role",
			"data":    nil,
		})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetCurrentUserIsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    40301,
				"message": "insufficient role",
				"data":    nil,
			})
			return
		}
		c.Next()
	}
}

// ManagerRoleForKind maps a program kind to the manager role allowed to act
// on it: projects need a project manager, services a service manager.
func ManagerRoleForKind(kind string) string {
	if kind == model.KindProject {
		return model.RoleProjectManager
	}
	return model.RoleServiceManager
}

// CanManageKind reports whether the current actor may run admin actions on a
// program of the given kind.
func CanManageKind(c *gin.Context, kind string) bool {
	if GetCurrentUserIsAdmin(c) {
		return true
	}
	return GetCurrentUserRole(c) == ManagerRoleForKind(kind)
}
