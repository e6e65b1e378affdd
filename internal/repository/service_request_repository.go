package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// ErrRequestNotFound is returned when a service request lookup matches
// no row.
var ErrRequestNotFound = errors.New("service request not found")

// ErrNoFields is returned by Update when the caller supplied nothing to
// change.
var ErrNoFields = errors.New("no fields to update")

// ServiceRequestRepo encapsulates all database queries related to
// service requests.
type ServiceRequestRepo struct {
	db *sql.DB
}

// NewServiceRequestRepo constructs a ServiceRequestRepo with the
// provided DB handle.
func NewServiceRequestRepo(db *sql.DB) *ServiceRequestRepo {
	return &ServiceRequestRepo{db: db}
}

// List returns the joined request view, newest first. Either filter may
// be zero; ownerID narrows to requests from one owner's tenants,
// tenantID to one tenant's own requests. ownerID wins when both are set,
// matching the original API.
func (r *ServiceRequestRepo) List(ctx context.Context, ownerID, tenantID int64) ([]model.ServiceRequestView, error) {
	q := `SELECT
	    sr.RequestID,
	    sr.Category,
	    sr.Description,
	    sr.Status,
	    sr.DateRaised,
	    sr.DateResolved,
	    sr.TenantID,
	    CONCAT_WS(' ', tn.FirstName, tn.MiddleName, tn.LastName) AS TenantName,
	    t.RoomID,
	    t.OwnerID,
	    s.StaffID,
	    s.name AS StaffName,
	    s.contact AS StaffContact,
	    s.role AS StaffRole
	FROM ServiceRequest sr
	JOIN Tenant t ON sr.TenantID = t.TenantID
	LEFT JOIN Tenant_Name tn ON t.TenantID = tn.TenantID
	LEFT JOIN Staff s ON sr.StaffID = s.StaffID`

	args := []any{}
	if ownerID != 0 {
		q += " WHERE t.OwnerID = ?"
		args = append(args, ownerID)
	} else if tenantID != 0 {
		q += " WHERE sr.TenantID = ?"
		args = append(args, tenantID)
	}
	q += " ORDER BY sr.DateRaised DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ServiceRequestView{}
	for rows.Next() {
		var (
			v            model.ServiceRequestView
			tenantName   sql.NullString
			dateResolved sql.NullTime
		)
		if err := rows.Scan(&v.RequestID, &v.Category, &v.Description, &v.Status,
			&v.DateRaised, &dateResolved, &v.TenantID, &tenantName,
			&v.RoomID, &v.OwnerID, &v.StaffID, &v.StaffName, &v.StaffContact, &v.StaffRole); err != nil {
			return nil, err
		}
		v.TenantName = tenantName.String
		if dateResolved.Valid {
			v.DateResolved = &dateResolved.Time
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ListByTenant returns one tenant's raw request rows, used by the
// composite tenant view.
func (r *ServiceRequestRepo) ListByTenant(ctx context.Context, tenantID int64) ([]model.ServiceRequest, error) {
	const q = `SELECT RequestID, Category, Description, Status, DateRaised, DateResolved, TenantID, StaffID
	           FROM ServiceRequest WHERE TenantID = ? ORDER BY RequestID`
	rows, err := r.db.QueryContext(ctx, q, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ServiceRequest{}
	for rows.Next() {
		var (
			s            model.ServiceRequest
			dateResolved sql.NullTime
		)
		if err := rows.Scan(&s.RequestID, &s.Category, &s.Description, &s.Status,
			&s.DateRaised, &dateResolved, &s.TenantID, &s.StaffID); err != nil {
			return nil, err
		}
		if dateResolved.Valid {
			s.DateResolved = &dateResolved.Time
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a new request with status 'Pending' and returns its
// auto-generated id. ErrConflict is returned when TenantID references a
// missing tenant.
func (r *ServiceRequestRepo) Create(ctx context.Context, category, description, dateRaised string, tenantID int64) (int64, error) {
	const q = `INSERT INTO ServiceRequest (Category, Description, Status, DateRaised, TenantID)
	           VALUES (?, ?, 'Pending', ?, ?)`
	res, err := r.db.ExecContext(ctx, q, category, description, dateRaised, tenantID)
	if err != nil {
		if isFKViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Update applies a partial update of status and staff assignment. A nil
// status leaves the status alone; setStaff distinguishes "assign staffID
// (possibly NULL to unassign)" from "don't touch the assignment". Moving
// the status to 'Completed' stamps DateResolved. ErrNoFields is returned
// when there is nothing to change, ErrRequestNotFound when no row
// matches.
func (r *ServiceRequestRepo) Update(ctx context.Context, id int64, status *string, setStaff bool, staffID *int64) error {
	set := []string{}
	args := []any{}
	if status != nil {
		set = append(set, "Status = ?")
		args = append(args, *status)
	}
	if setStaff {
		set = append(set, "StaffID = ?")
		args = append(args, staffID)
	}
	if status != nil && *status == "Completed" {
		set = append(set, "DateResolved = NOW()")
	}
	if len(set) == 0 {
		return ErrNoFields
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx,
		"UPDATE ServiceRequest SET "+strings.Join(set, ", ")+" WHERE RequestID = ?", args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Resolve marks a request Completed with an explicit resolution date and
// staff assignment. ErrRequestNotFound is returned when no row matches.
func (r *ServiceRequestRepo) Resolve(ctx context.Context, id int64, dateResolved string, staffID *int64) error {
	const q = `UPDATE ServiceRequest
	           SET Status = 'Completed', DateResolved = ?, StaffID = ?
	           WHERE RequestID = ?`
	res, err := r.db.ExecContext(ctx, q, dateResolved, staffID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRequestNotFound
	}
	return nil
}
