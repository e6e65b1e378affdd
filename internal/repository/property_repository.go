package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// ErrPropertyNotFound is returned when a property lookup matches no row.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepo encapsulates all database queries related to properties.
// Deleting a property cascades to its rooms inside a single transaction;
// the schema declares no ON DELETE CASCADE, so the ordering here is what
// keeps rooms from being orphaned.
type PropertyRepo struct {
	db *sql.DB
}

// NewPropertyRepo constructs a PropertyRepo with the provided DB handle.
func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{db: db}
}

// List returns all properties ordered by id.
func (r *PropertyRepo) List(ctx context.Context) ([]model.Property, error) {
	const q = "SELECT PropertyID, name, location, TotalRooms, OwnerID FROM Property ORDER BY PropertyID"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Property{}
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(&p.PropertyID, &p.Name, &p.Location, &p.TotalRooms, &p.OwnerID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create inserts a new property and returns its auto-generated id.
// ErrConflict is returned when OwnerID references a missing owner.
func (r *PropertyRepo) Create(ctx context.Context, p model.Property) (int64, error) {
	const q = "INSERT INTO Property (name, location, TotalRooms, OwnerID) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Location, p.TotalRooms, p.OwnerID)
	if err != nil {
		if isFKViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Update replaces all mutable fields of a property. It returns
// ErrPropertyNotFound when no row is affected.
func (r *PropertyRepo) Update(ctx context.Context, id int64, p model.Property) error {
	const q = "UPDATE Property SET name = ?, location = ?, TotalRooms = ?, OwnerID = ? WHERE PropertyID = ?"
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Location, p.TotalRooms, p.OwnerID, id)
	if err != nil {
		if isFKViolation(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// Delete removes a property and every room that references it. Both
// deletes run in one transaction: if the room delete fails the property
// survives, and a missing property rolls back before any room is
// touched. Returns the number of rooms deleted alongside the property.
func (r *PropertyRepo) Delete(ctx context.Context, id int64) (roomsDeleted int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var exists int64
	if err = tx.QueryRowContext(ctx, "SELECT PropertyID FROM Property WHERE PropertyID = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrPropertyNotFound
		}
		return 0, err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM Room WHERE PropertyID = ?", id)
	if err != nil {
		return 0, err
	}
	roomsDeleted, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, "DELETE FROM Property WHERE PropertyID = ?", id)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrPropertyNotFound
		return 0, err
	}
	return roomsDeleted, nil
}
