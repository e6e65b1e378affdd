package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// ErrRoomNotFound is returned when a room lookup matches no row.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo encapsulates all database queries related to rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomColumns = "RoomID, BedCount, OccupiedBeds, RentAmount, RoomType, PropertyID"

func scanRooms(rows *sql.Rows) ([]model.Room, error) {
	defer rows.Close()
	out := []model.Room{}
	for rows.Next() {
		var m model.Room
		if err := rows.Scan(&m.RoomID, &m.BedCount, &m.OccupiedBeds, &m.RentAmount, &m.RoomType, &m.PropertyID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// List returns all rooms ordered by id.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+roomColumns+" FROM Room ORDER BY RoomID")
	if err != nil {
		return nil, err
	}
	return scanRooms(rows)
}

// ListByProperty returns the rooms of one property ordered by id.
func (r *RoomRepo) ListByProperty(ctx context.Context, propertyID int64) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+roomColumns+" FROM Room WHERE PropertyID = ? ORDER BY RoomID", propertyID)
	if err != nil {
		return nil, err
	}
	return scanRooms(rows)
}

// Create inserts a new room and returns its auto-generated id.
// ErrConflict is returned when PropertyID references a missing property.
func (r *RoomRepo) Create(ctx context.Context, m model.Room) (int64, error) {
	const q = "INSERT INTO Room (BedCount, OccupiedBeds, RentAmount, RoomType, PropertyID) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, m.BedCount, m.OccupiedBeds, m.RentAmount, m.RoomType, m.PropertyID)
	if err != nil {
		if isFKViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Update replaces all mutable fields of a room. It returns
// ErrRoomNotFound when no row is affected.
func (r *RoomRepo) Update(ctx context.Context, id int64, m model.Room) error {
	const q = "UPDATE Room SET BedCount = ?, OccupiedBeds = ?, RentAmount = ?, RoomType = ?, PropertyID = ? WHERE RoomID = ?"
	res, err := r.db.ExecContext(ctx, q, m.BedCount, m.OccupiedBeds, m.RentAmount, m.RoomType, m.PropertyID, id)
	if err != nil {
		if isFKViolation(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes a room. It returns ErrRoomNotFound when no row is
// affected.
func (r *RoomRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM Room WHERE RoomID = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
