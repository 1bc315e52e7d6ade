package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectOwnedTask(mock sqlmock.Sqlmock, taskID uint, ownerUserID uint, status string) {
	mock.ExpectQuery("SELECT \\* FROM `volunteer_tasks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "application_id", "status", "progress_percent"}).
			AddRow(taskID, 7, status, 20))
	mock.ExpectQuery("SELECT \\* FROM `volunteer_applications`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}).AddRow(7, 3))
	mock.ExpectQuery("SELECT \\* FROM `volunteer_profiles`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(3, ownerUserID))
}

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTaskService(db)

	expectOwnedTask(mock, 11, 42, "in_progress")

	pp := 101
	_, err := svc.UpdateProgress(11, 42, ProgressUpdate{ProgressPercent: &pp})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001:")
}

func TestUpdateProgressRejectsUnknownStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTaskService(db)

	expectOwnedTask(mock, 11, 42, "in_progress")

	status := "archived"
	_, err := svc.UpdateProgress(11, 42, ProgressUpdate{Status: &status})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001:")
}

func TestUpdateProgressAcceptsBoundaries(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTaskService(db)

	expectOwnedTask(mock, 11, 42, "in_progress")
	mock.ExpectExec("UPDATE `volunteer_tasks`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	pp := 100
	task, err := svc.UpdateProgress(11, 42, ProgressUpdate{ProgressPercent: &pp})
	require.NoError(t, err)
	assert.Equal(t, uint(100), task.ProgressPercent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProgressRequiresAField(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTaskService(db)

	expectOwnedTask(mock, 11, 42, "in_progress")

	_, err := svc.UpdateProgress(11, 42, ProgressUpdate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001:")
}

func TestTaskOwnershipDenied(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTaskService(db)

	expectOwnedTask(mock, 11, 42, "new")

	_, err := svc.ListItems(11, 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40302:")
}
