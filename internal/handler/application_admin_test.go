package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func managerContext(t *testing.T, role string, isAdmin bool) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Set("userID", uint(1))
	c.Set("userRole", role)
	c.Set("isAdmin", isAdmin)
	return c, w
}

func expectAppWithProgram(mock sqlmock.Sqlmock, appID, programID uint, status, kind string) {
	mock.ExpectQuery("SELECT \\* FROM `volunteer_applications`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "program_id", "profile_id", "status"}).
			AddRow(appID, programID, 3, status))
	mock.ExpectQuery("SELECT \\* FROM `programs`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "name"}).
			AddRow(programID, kind, "Food baskets"))
}

func newAdminHandler(db *gorm.DB) *ApplicationAdminHandler {
	return NewApplicationAdminHandler(
		service.NewApplicationService(db, zap.NewNop()),
		service.NewTaskService(db),
	)
}

func TestApproveAllowedForMatchingKindManager(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAdminHandler(db)

	expectAppWithProgram(mock, 7, 5, "applied", "service")
	mock.ExpectExec("UPDATE `volunteer_applications`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, w := managerContext(t, "service_manager", false)
	h.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveDeniedForWrongKindManager(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAdminHandler(db)

	expectAppWithProgram(mock, 7, 5, "applied", "service")

	c, w := managerContext(t, "project_manager", false)
	h.Approve(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "40301")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectDeniedForVolunteerManager(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAdminHandler(db)

	expectAppWithProgram(mock, 7, 5, "applied", "project")

	c, w := managerContext(t, "volunteer_manager", false)
	h.Reject(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectAdminBypassesKindCheck(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAdminHandler(db)

	expectAppWithProgram(mock, 7, 5, "applied", "project")
	mock.ExpectExec("UPDATE `volunteer_applications`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, w := managerContext(t, "volunteer_manager", true)
	h.Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rejected"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
