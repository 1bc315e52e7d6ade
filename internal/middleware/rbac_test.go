package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func callWithActor(role string, isAdmin bool, mw gin.HandlerFunc) int {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set("userID", uint(1))
	c.Set("userRole", role)
	c.Set("isAdmin", isAdmin)
	mw(c)
	if c.IsAborted() {
		return w.Code
	}
	return http.StatusOK
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole(model.RoleServiceManager)

	assert.Equal(t, http.StatusOK, callWithActor(model.RoleServiceManager, false, mw))
	assert.Equal(t, http.StatusForbidden, callWithActor(model.RoleVolunteer, false, mw))
	// Admin bypass regardless of role.
	assert.Equal(t, http.StatusOK, callWithActor(model.RoleVolunteer, true, mw))
}

func TestRequireRoleMultiple(t *testing.T) {
	mw := RequireRole(model.RoleServiceManager, model.RoleProjectManager)
	assert.Equal(t, http.StatusOK, callWithActor(model.RoleProjectManager, false, mw))
	assert.Equal(t, http.StatusForbidden, callWithActor(model.RoleVolunteerManager, false, mw))
}

func TestRequireAdmin(t *testing.T) {
	mw := RequireAdmin()
	assert.Equal(t, http.StatusOK, callWithActor(model.RoleVolunteer, true, mw))
	assert.Equal(t, http.StatusForbidden, callWithActor(model.RoleServiceManager, false, mw))
}

func TestManagerRoleForKind(t *testing.T) {
	assert.Equal(t, model.RoleProjectManager, ManagerRoleForKind(model.KindProject))
	assert.Equal(t, model.RoleServiceManager, ManagerRoleForKind(model.KindService))
}

func TestCanManageKind(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userRole", model.RoleProjectManager)
	c.Set("isAdmin", false)

	assert.True(t, CanManageKind(c, model.KindProject))
	assert.False(t, CanManageKind(c, model.KindService))

	c.Set("isAdmin", true)
	assert.True(t, CanManageKind(c, model.KindService))
}
