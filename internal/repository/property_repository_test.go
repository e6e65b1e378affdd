package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

func setupPropertyRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PropertyRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewPropertyRepo(db)
}

func TestPropertyCreate_InvalidOwner(t *testing.T) {
	db, mock, repo := setupPropertyRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Property (name, location, TotalRooms, OwnerID)")).
		WithArgs("Sunrise PG", "Pune", int64(10), int64(999)).
		WillReturnError(errorString("Error 1452: Cannot add or update a child row"))

	_, err := repo.Create(context.Background(), model.Property{
		Name: "Sunrise PG", Location: "Pune", TotalRooms: 10, OwnerID: 999,
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyUpdate_NotFound(t *testing.T) {
	db, mock, repo := setupPropertyRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE Property SET name = ?")).
		WithArgs("Sunrise PG", "Pune", int64(10), int64(2), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, model.Property{
		Name: "Sunrise PG", Location: "Pune", TotalRooms: 10, OwnerID: 2,
	})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyDelete_CascadesToRooms(t *testing.T) {
	db, mock, repo := setupPropertyRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT PropertyID FROM Property WHERE PropertyID = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"PropertyID"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Room WHERE PropertyID = ?")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Property WHERE PropertyID = ?")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	roomsDeleted, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), roomsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyDelete_NotFoundBeforeAnyDelete(t *testing.T) {
	db, mock, repo := setupPropertyRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT PropertyID FROM Property WHERE PropertyID = ?")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"PropertyID"}))
	mock.ExpectRollback()

	_, err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyDelete_RoomDeleteFailureKeepsProperty(t *testing.T) {
	db, mock, repo := setupPropertyRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT PropertyID FROM Property WHERE PropertyID = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"PropertyID"}).AddRow(3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Room WHERE PropertyID = ?")).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.Delete(context.Background(), 3)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
