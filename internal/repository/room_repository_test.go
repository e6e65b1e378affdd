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

func setupRoomRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *RoomRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewRoomRepo(db)
}

func TestRoomListByProperty(t *testing.T) {
	db, mock, repo := setupRoomRepo(t)
	defer db.Close()

	cols := []string{"RoomID", "BedCount", "OccupiedBeds", "RentAmount", "RoomType", "PropertyID"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM Room WHERE PropertyID = ? ORDER BY RoomID")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(5, 2, 1, 6000.0, "Double", 3).
			AddRow(6, 1, 0, 8000.0, "Single", 3))

	rooms, err := repo.ListByProperty(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Double", rooms[0].RoomType)
	assert.Equal(t, int64(3), rooms[1].PropertyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomCreate_InvalidProperty(t *testing.T) {
	db, mock, repo := setupRoomRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Room (BedCount, OccupiedBeds, RentAmount, RoomType, PropertyID)")).
		WithArgs(int64(2), int64(0), 6000.0, "Double", int64(999)).
		WillReturnError(errorString("Error 1452: Cannot add or update a child row"))

	_, err := repo.Create(context.Background(), model.Room{
		BedCount: 2, RentAmount: 6000, RoomType: "Double", PropertyID: 999,
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomDelete_NotFound(t *testing.T) {
	db, mock, repo := setupRoomRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Room WHERE RoomID = ?")).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
