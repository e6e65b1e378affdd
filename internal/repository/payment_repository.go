package repository

import (
	"context"
	"database/sql"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// PaymentRepo encapsulates payment reads and the full-payment workflow.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo with the provided DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = "PaymentID, TenantID, Amount, Date, PaymentMode, Status"

func scanPayments(rows *sql.Rows) ([]model.Payment, error) {
	defer rows.Close()
	out := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.PaymentID, &p.TenantID, &p.Amount, &p.Date, &p.PaymentMode, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List returns all payments ordered by id.
func (r *PaymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+paymentColumns+" FROM Payment ORDER BY PaymentID")
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

// ListByTenant returns all payments made by one tenant.
func (r *PaymentRepo) ListByTenant(ctx context.Context, tenantID int64) ([]model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM Payment WHERE TenantID = ? ORDER BY PaymentID", tenantID)
	if err != nil {
		return nil, err
	}
	return scanPayments(rows)
}

// RecordFullPayment settles a tenant's outstanding rent: it reads the
// total due from the GetTotalRentDue stored function, inserts a Payment
// row dated now with status 'Paid', and flips the tenant's payment
// status to 'Paid'. The insert and the status flip commit together or
// not at all; a payment row without the matching status flip would be an
// inconsistent observable state. Returns the settled amount and the new
// payment's id.
func (r *PaymentRepo) RecordFullPayment(ctx context.Context, tenantID int64, mode string) (amount float64, paymentID int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var due sql.NullFloat64
	if err = tx.QueryRowContext(ctx,
		"SELECT GetTotalRentDue(?) AS TotalDue", tenantID).Scan(&due); err != nil {
		return 0, 0, err
	}
	amount = due.Float64 // NULL -> 0, a tenant with no charges owes nothing

	res, err := tx.ExecContext(ctx,
		"INSERT INTO Payment (TenantID, Amount, Date, PaymentMode, Status) VALUES (?, ?, NOW(), ?, 'Paid')",
		tenantID, amount, mode)
	if err != nil {
		if isFKViolation(err) {
			err = ErrConflict
		}
		return 0, 0, err
	}
	paymentID, _ = res.LastInsertId()

	if _, err = tx.ExecContext(ctx,
		"UPDATE Tenant SET PaymentStatus = 'Paid' WHERE TenantID = ?", tenantID); err != nil {
		return 0, 0, err
	}
	return amount, paymentID, nil
}
