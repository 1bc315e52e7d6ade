package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func expectOwnedApplication(mock sqlmock.Sqlmock, appID, profileID, ownerUserID uint, status string) {
	mock.ExpectQuery("SELECT \\* FROM `volunteer_applications`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "program_id", "profile_id", "status", "actual_hours"}).
			AddRow(appID, 1, profileID, status, 4))
	mock.ExpectQuery("SELECT \\* FROM `volunteer_profiles`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_hours"}).
			AddRow(profileID, ownerUserID, 10))
}

func TestWithdrawFromTerminalStatusFails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(db, zap.NewNop())

	expectOwnedApplication(mock, 7, 3, 42, "completed")

	_, err := svc.Withdraw(7, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40003:")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawDeniedForNonOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(db, zap.NewNop())

	expectOwnedApplication(mock, 7, 3, 42, "applied")

	_, err := svc.Withdraw(7, 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40302:")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawUpdatesStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(db, zap.NewNop())

	expectOwnedApplication(mock, 7, 3, 42, "applied")
	mock.ExpectExec("UPDATE `volunteer_applications`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	app, err := svc.Withdraw(7, 42)
	require.NoError(t, err)
	assert.Equal(t, "withdrawn", app.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogHoursRejectsZero(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewApplicationService(db, zap.NewNop())

	_, _, err := svc.LogHours(7, 42, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001:")
}

func TestLogHoursIncrementsBothRows(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(db, zap.NewNop())

	expectOwnedApplication(mock, 7, 3, 42, "in_progress")
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `volunteer_applications`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `volunteer_profiles`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app, profile, err := svc.LogHours(7, 42, 5)
	require.NoError(t, err)
	assert.Equal(t, uint(9), app.ActualHours)
	assert.Equal(t, uint(15), profile.TotalHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNoteDeniedForNonOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(db, zap.NewNop())

	expectOwnedApplication(mock, 7, 3, 42, "applied")

	_, err := svc.UpdateNote(7, 99, "note")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40302:")
}
