package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRequestRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *ServiceRequestRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewServiceRequestRepo(db)
}

func TestServiceRequestList_OwnerFilterWins(t *testing.T) {
	db, mock, repo := setupRequestRepo(t)
	defer db.Close()

	cols := []string{
		"RequestID", "Category", "Description", "Status", "DateRaised", "DateResolved",
		"TenantID", "TenantName", "RoomID", "OwnerID", "StaffID", "StaffName", "StaffContact", "StaffRole",
	}
	raised := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.OwnerID = ? ORDER BY sr.DateRaised DESC")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Plumbing", "Leaky tap", "Pending", raised, nil,
				7, "Asha Rao", 5, 2, nil, nil, nil, nil))

	// Both filters set: the owner filter must be the one in the query.
	views, err := repo.List(context.Background(), 2, 7)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Asha Rao", views[0].TenantName)
	assert.Nil(t, views[0].StaffID)
	assert.Nil(t, views[0].DateResolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRequestUpdate_CompletedStampsDateResolved(t *testing.T) {
	db, mock, repo := setupRequestRepo(t)
	defer db.Close()

	status := "Completed"
	staffID := int64(4)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ServiceRequest SET Status = ?, StaffID = ?, DateResolved = NOW() WHERE RequestID = ?")).
		WithArgs("Completed", &staffID, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 9, &status, true, &staffID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRequestUpdate_UnassignStaff(t *testing.T) {
	db, mock, repo := setupRequestRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE ServiceRequest SET StaffID = ? WHERE RequestID = ?")).
		WithArgs(nil, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 9, nil, true, nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRequestUpdate_NoFields(t *testing.T) {
	db, mock, repo := setupRequestRepo(t)
	defer db.Close()

	err := repo.Update(context.Background(), 9, nil, false, nil)
	assert.ErrorIs(t, err, ErrNoFields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRequestUpdate_NotFound(t *testing.T) {
	db, mock, repo := setupRequestRepo(t)
	defer db.Close()

	status := "InProgress"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ServiceRequest SET Status = ? WHERE RequestID = ?")).
		WithArgs("InProgress", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, &status, false, nil)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRequestCreate_InvalidTenant(t *testing.T) {
	db, mock, repo := setupRequestRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ServiceRequest (Category, Description, Status, DateRaised, TenantID)")).
		WithArgs("Plumbing", "Leaky tap", "2024-04-01", int64(999)).
		WillReturnError(errorString("Error 1452: Cannot add or update a child row"))

	_, err := repo.Create(context.Background(), "Plumbing", "Leaky tap", "2024-04-01", 999)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
