package repository

import (
	"context"
	"database/sql"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// StaffRepo encapsulates all database queries related to staff members.
type StaffRepo struct {
	db *sql.DB
}

// NewStaffRepo constructs a StaffRepo with the provided DB handle.
func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

// ListAvailable returns staff whose availability status is 'Available',
// ordered by name. The listing endpoint only ever shows assignable
// staff, so the filter lives in the query.
func (r *StaffRepo) ListAvailable(ctx context.Context) ([]model.Staff, error) {
	const q = `SELECT StaffID, name, role, contact, AvailabilityStatus
	           FROM Staff WHERE AvailabilityStatus = 'Available' ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Staff{}
	for rows.Next() {
		var s model.Staff
		if err := rows.Scan(&s.StaffID, &s.Name, &s.Role, &s.Contact, &s.AvailabilityStatus); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a new staff member. The StaffID is chosen by the
// caller, not auto-generated.
func (r *StaffRepo) Create(ctx context.Context, s model.Staff) error {
	const q = "INSERT INTO Staff (StaffID, name, role, contact, AvailabilityStatus) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, q, s.StaffID, s.Name, s.Role, s.Contact, s.AvailabilityStatus)
	return err
}
