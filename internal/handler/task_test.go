package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ownerContext(t *testing.T, userID uint, params gin.Params, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	c.Params = params
	c.Set("userID", userID)
	c.Set("userRole", "volunteer")
	c.Set("isAdmin", false)
	return c, w
}

func expectOwnedTaskChain(mock sqlmock.Sqlmock, taskID, ownerUserID uint) {
	mock.ExpectQuery("SELECT \\* FROM `volunteer_tasks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "application_id", "status"}).
			AddRow(taskID, 7, "in_progress"))
	mock.ExpectQuery("SELECT \\* FROM `volunteer_applications`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}).AddRow(7, 3))
	mock.ExpectQuery("SELECT \\* FROM `volunteer_profiles`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, ownerUserID))
}

func expectToggle(mock sqlmock.Sqlmock, itemID, taskID uint) {
	mock.ExpectQuery("SELECT \\* FROM `volunteer_task_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "task_id", "text", "is_done"}).
			AddRow(itemID, taskID, "hand out baskets", false))
	mock.ExpectExec("UPDATE `volunteer_task_items`").
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestToggleItemEmptyBodyMarksDone(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewTaskHandler(service.NewTaskService(db))

	expectOwnedTaskChain(mock, 11, 42)
	expectToggle(mock, 2, 11)

	params := gin.Params{{Key: "id", Value: "11"}, {Key: "item_id", Value: "2"}}
	c, w := ownerContext(t, 42, params, "")
	h.ToggleItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_done":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleItemOmittedFieldMarksDone(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewTaskHandler(service.NewTaskService(db))

	expectOwnedTaskChain(mock, 11, 42)
	expectToggle(mock, 2, 11)

	params := gin.Params{{Key: "id", Value: "11"}, {Key: "item_id", Value: "2"}}
	c, w := ownerContext(t, 42, params, `{}`)
	h.ToggleItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_done":true`)
}

func TestToggleItemExplicitFalse(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewTaskHandler(service.NewTaskService(db))

	expectOwnedTaskChain(mock, 11, 42)
	expectToggle(mock, 2, 11)

	params := gin.Params{{Key: "id", Value: "11"}, {Key: "item_id", Value: "2"}}
	c, w := ownerContext(t, 42, params, `{"is_done":false}`)
	h.ToggleItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_done":false`)
}
