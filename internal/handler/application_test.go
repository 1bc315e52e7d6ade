package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RafeefAlsuhaibani/takaful-test-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUpdateNoteReadsVolunteerNoteKey(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewApplicationHandler(service.NewApplicationService(db, zap.NewNop()))

	mock.ExpectQuery("SELECT \\* FROM `volunteer_applications`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "program_id", "profile_id", "status"}).
			AddRow(7, 5, 3, "accepted"))
	mock.ExpectQuery("SELECT \\* FROM `volunteer_profiles`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, 42))
	mock.ExpectExec("UPDATE `volunteer_applications`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	params := gin.Params{{Key: "id", Value: "7"}}
	c, w := ownerContext(t, 42, params, `{"volunteer_note":"bring gloves"}`)
	h.UpdateNote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bring gloves")
	assert.NoError(t, mock.ExpectationsWereMet())
}
