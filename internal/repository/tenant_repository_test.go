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

func setupTenantRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *TenantRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewTenantRepo(db)
}

var assembledCols = []string{
	"TenantID", "FirstName", "MiddleName", "LastName",
	"CheckInDate", "CheckOutDate", "PaymentStatus", "RoomID", "OwnerID",
	"Phones", "Emails", "Contact", "Email",
}

func TestTenantCreate_Success(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Tenant (CheckInDate, CheckOutDate, PaymentStatus, RoomID, OwnerID)")).
		WithArgs("2024-01-01", nil, "Pending", int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Tenant_Name (TenantID, FirstName, MiddleName, LastName)")).
		WithArgs(int64(7), "Asha", "", "Rao").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tenant_Phone (TenantID, tenant_Phone)")).
		WithArgs(int64(7), "111").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tenant_Email (TenantID, tenant_Email)")).
		WithArgs(int64(7), "a@x.com").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.TenantID = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(assembledCols).
			AddRow(7, "Asha", "", "Rao", checkIn, nil, "Pending", 5, 2, "111", "a@x.com", "111", "a@x.com"))

	tenant, err := repo.Create(context.Background(), TenantInput{
		FirstName:     "Asha",
		LastName:      "Rao",
		Phones:        []string{"111"},
		Emails:        []string{"a@x.com"},
		CheckInDate:   "2024-01-01",
		PaymentStatus: "Pending",
		RoomID:        5,
		OwnerID:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), tenant.TenantID)
	assert.Equal(t, "Asha", tenant.FirstName)
	assert.Equal(t, "Rao", tenant.LastName)
	assert.Equal(t, "111", tenant.Phones)
	assert.Equal(t, "a@x.com", tenant.Emails)
	assert.Equal(t, tenant.Phones, tenant.Contact)
	assert.Equal(t, tenant.Emails, tenant.Email)
	assert.Equal(t, "Pending", tenant.PaymentStatus)
	assert.Nil(t, tenant.CheckOutDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantCreate_RollsBackWhenContactInsertFails(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Tenant (")).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Tenant_Name (")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tenant_Phone (")).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), TenantInput{
		FirstName: "Asha", LastName: "Rao",
		Phones: []string{"111"}, Emails: []string{"a@x.com"},
		CheckInDate: "2024-01-01", PaymentStatus: "Pending", RoomID: 5, OwnerID: 2,
	})

	require.Error(t, err)
	// No commit expectation: the whole aggregate rolls back and no
	// orphaned core or name row can survive.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantCreate_InvalidReference(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Tenant (")).
		WillReturnError(errorString("Error 1452: Cannot add or update a child row"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), TenantInput{
		FirstName: "Asha", LastName: "Rao",
		Phones: []string{"111"}, Emails: []string{"a@x.com"},
		CheckInDate: "2024-01-01", PaymentStatus: "Pending", RoomID: 999, OwnerID: 2,
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantUpdate_EmptyContactListsReplace(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE Tenant SET CheckInDate = ?")).
		WithArgs("2024-01-01", nil, "Pending", int64(5), int64(2), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE Tenant_Name SET FirstName = ?")).
		WithArgs("Asha", "", "Rao", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_Phone WHERE TenantID = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_Email WHERE TenantID = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Empty lists mean no inserts: the old contacts are gone for good.
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.TenantID = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(assembledCols).
			AddRow(7, "Asha", "", "Rao", checkIn, nil, "Pending", 5, 2, "", "", "", ""))

	tenant, err := repo.Update(context.Background(), 7, TenantInput{
		FirstName: "Asha", LastName: "Rao",
		CheckInDate: "2024-01-01", PaymentStatus: "Pending", RoomID: 5, OwnerID: 2,
	})

	require.NoError(t, err)
	assert.Empty(t, tenant.Phones)
	assert.Empty(t, tenant.Contact)
	assert.Empty(t, tenant.Emails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantDelete_RemovesAggregateInOrder(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_Phone WHERE TenantID = ?")).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_Email WHERE TenantID = ?")).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Tenant_Name WHERE TenantID = ?")).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Tenant WHERE TenantID = ?")).
		WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantDelete_NotFound(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_Phone WHERE TenantID = ?")).
		WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_Email WHERE TenantID = ?")).
		WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Tenant_Name WHERE TenantID = ?")).
		WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Tenant WHERE TenantID = ?")).
		WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTenantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantUpdateStatus_NotFound(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE Tenant SET PaymentStatus = ?")).
		WithArgs("Paid", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 404, "Paid")
	assert.ErrorIs(t, err, ErrTenantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantLogin_ExactNameMatch(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("CONCAT_WS(' ', tn.FirstName, tn.MiddleName, tn.LastName) = ?")).
		WithArgs(int64(7), "Asha Rao").
		WillReturnRows(sqlmock.NewRows(assembledCols).
			AddRow(7, "Asha", "", "Rao", checkIn, nil, "Paid", 5, 2, "111", "a@x.com", "111", "a@x.com"))

	tenant, err := repo.Login(context.Background(), 7, "Asha Rao")
	require.NoError(t, err)
	assert.Equal(t, int64(7), tenant.TenantID)

	mock.ExpectQuery(regexp.QuoteMeta("CONCAT_WS(' ', tn.FirstName, tn.MiddleName, tn.LastName) = ?")).
		WithArgs(int64(7), "asha rao").
		WillReturnRows(sqlmock.NewRows(assembledCols))

	_, err = repo.Login(context.Background(), 7, "asha rao")
	assert.ErrorIs(t, err, ErrTenantNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenantTotalDue_NullCoalescesToZero(t *testing.T) {
	db, mock, repo := setupTenantRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT GetTotalRentDue(?) AS TotalDue")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"TotalDue"}).AddRow(nil))

	due, err := repo.TotalDue(context.Background(), 7)
	require.NoError(t, err)
	assert.Zero(t, due)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// errorString builds an error whose text mimics a MySQL driver error.
type errorString string

func (e errorString) Error() string { return string(e) }
