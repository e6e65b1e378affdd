package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// ErrOwnerNotFound is returned when an owner lookup matches no row.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepo encapsulates all database queries related to owners.
type OwnerRepo struct {
	db *sql.DB
}

// NewOwnerRepo constructs an OwnerRepo with the provided DB handle.
func NewOwnerRepo(db *sql.DB) *OwnerRepo {
	return &OwnerRepo{db: db}
}

// List returns all owners ordered by id.
func (r *OwnerRepo) List(ctx context.Context) ([]model.Owner, error) {
	const q = "SELECT OwnerID, name, phone, email, address FROM Owner ORDER BY OwnerID"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Owner{}
	for rows.Next() {
		var o model.Owner
		if err := rows.Scan(&o.OwnerID, &o.Name, &o.Phone, &o.Email, &o.Address); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Create inserts a new owner. The OwnerID is chosen by the caller, not
// auto-generated.
func (r *OwnerRepo) Create(ctx context.Context, o model.Owner) error {
	const q = "INSERT INTO Owner (OwnerID, name, phone, email, address) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, q, o.OwnerID, o.Name, o.Phone, o.Email, o.Address)
	return err
}

// Login fetches the owner whose id and name both match exactly. It
// returns ErrOwnerNotFound when no row matches; the handler maps that to
// a 401, since a failed equality lookup is the only authentication this
// system performs.
func (r *OwnerRepo) Login(ctx context.Context, ownerID int64, name string) (model.Owner, error) {
	const q = "SELECT OwnerID, name, phone, email, address FROM Owner WHERE OwnerID = ? AND name = ?"
	var o model.Owner
	err := r.db.QueryRowContext(ctx, q, ownerID, name).
		Scan(&o.OwnerID, &o.Name, &o.Phone, &o.Email, &o.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Owner{}, ErrOwnerNotFound
	}
	return o, err
}
