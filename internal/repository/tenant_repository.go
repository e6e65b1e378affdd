package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// ErrTenantNotFound is returned when a tenant lookup matches no row.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepo owns the tenant aggregate: the core Tenant row, its
// one-to-one Tenant_Name row and its tenant_Phone/tenant_Email sets.
// The four pieces share one lifetime boundary, so every multi-table
// write here runs inside a single transaction; a failure after the core
// insert rolls the whole aggregate back and no orphaned core or name
// row survives.
type TenantRepo struct {
	db *sql.DB
}

// NewTenantRepo constructs a TenantRepo with the provided DB handle.
func NewTenantRepo(db *sql.DB) *TenantRepo {
	return &TenantRepo{db: db}
}

// TenantInput carries the fields of a tenant create or replace-update.
// Date values are passed through to MySQL as strings in YYYY-MM-DD form.
type TenantInput struct {
	FirstName     string
	MiddleName    string
	LastName      string
	Phones        []string
	Emails        []string
	CheckInDate   string
	CheckOutDate  *string
	PaymentStatus string
	RoomID        int64
	OwnerID       int64
}

// assembledSelect joins the aggregate into one flat row per tenant.
// GROUP_CONCAT DISTINCT collapses duplicate contact values and joins
// them with ", "; COALESCE turns an empty set into an empty string.
// Phones/Contact and Emails/Email are alias pairs kept for frontends
// that expect either naming.
const assembledSelect = `
SELECT
    t.TenantID,
    tn.FirstName,
    tn.MiddleName,
    tn.LastName,
    t.CheckInDate,
    t.CheckOutDate,
    t.PaymentStatus,
    t.RoomID,
    t.OwnerID,
    COALESCE(GROUP_CONCAT(DISTINCT tp.tenant_Phone SEPARATOR ', '), '') AS Phones,
    COALESCE(GROUP_CONCAT(DISTINCT te.tenant_Email SEPARATOR ', '), '') AS Emails,
    COALESCE(GROUP_CONCAT(DISTINCT tp.tenant_Phone SEPARATOR ', '), '') AS Contact,
    COALESCE(GROUP_CONCAT(DISTINCT te.tenant_Email SEPARATOR ', '), '') AS Email
FROM Tenant t
LEFT JOIN Tenant_Name tn ON t.TenantID = tn.TenantID
LEFT JOIN tenant_Phone tp ON t.TenantID = tp.TenantID
LEFT JOIN tenant_Email te ON t.TenantID = te.TenantID`

func scanTenant(row interface {
	Scan(dest ...any) error
}) (model.Tenant, error) {
	var (
		t                   model.Tenant
		first, middle, last sql.NullString
		checkOut            sql.NullTime
	)
	err := row.Scan(&t.TenantID, &first, &middle, &last,
		&t.CheckInDate, &checkOut, &t.PaymentStatus, &t.RoomID, &t.OwnerID,
		&t.Phones, &t.Emails, &t.Contact, &t.Email)
	if err != nil {
		return model.Tenant{}, err
	}
	t.FirstName, t.MiddleName, t.LastName = first.String, middle.String, last.String
	if checkOut.Valid {
		t.CheckOutDate = &checkOut.Time
	}
	return t, nil
}

// List returns the assembled view of every tenant, grouped by tenant id.
func (r *TenantRepo) List(ctx context.Context) ([]model.Tenant, error) {
	rows, err := r.db.QueryContext(ctx, assembledSelect+"\nGROUP BY t.TenantID")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Get returns the assembled view of a single tenant, or ErrTenantNotFound.
func (r *TenantRepo) Get(ctx context.Context, id int64) (model.Tenant, error) {
	row := r.db.QueryRowContext(ctx,
		assembledSelect+"\nWHERE t.TenantID = ?\nGROUP BY t.TenantID\nLIMIT 1", id)
	t, err := scanTenant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tenant{}, ErrTenantNotFound
	}
	return t, err
}

// Create inserts the full tenant aggregate: core row, name row and every
// phone and email, all in one transaction. If any step after the core
// insert fails the transaction rolls back, so a partially created tenant
// is never observable. On success the assembled view is re-read and
// returned. ErrConflict is returned when RoomID or OwnerID references a
// missing row.
func (r *TenantRepo) Create(ctx context.Context, in TenantInput) (model.Tenant, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Tenant{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO Tenant (CheckInDate, CheckOutDate, PaymentStatus, RoomID, OwnerID) VALUES (?, ?, ?, ?, ?)",
		in.CheckInDate, in.CheckOutDate, in.PaymentStatus, in.RoomID, in.OwnerID)
	if err != nil {
		if isFKViolation(err) {
			err = ErrConflict
		}
		return model.Tenant{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Tenant{}, err
	}

	if _, err = tx.ExecContext(ctx,
		"INSERT INTO Tenant_Name (TenantID, FirstName, MiddleName, LastName) VALUES (?, ?, ?, ?)",
		id, in.FirstName, in.MiddleName, in.LastName); err != nil {
		return model.Tenant{}, err
	}
	if err = insertContacts(ctx, tx, id, in.Phones, in.Emails); err != nil {
		return model.Tenant{}, err
	}

	if err = tx.Commit(); err != nil {
		return model.Tenant{}, err
	}
	return r.Get(ctx, id)
}

// Update replaces the aggregate: core fields and name are updated in
// place, while the phone and email sets are deleted and re-inserted from
// the input (replace semantics, not append — an empty list leaves the
// tenant with no contacts). All six statements share one transaction.
func (r *TenantRepo) Update(ctx context.Context, id int64, in TenantInput) (model.Tenant, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Tenant{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		"UPDATE Tenant SET CheckInDate = ?, CheckOutDate = ?, PaymentStatus = ?, RoomID = ?, OwnerID = ? WHERE TenantID = ?",
		in.CheckInDate, in.CheckOutDate, in.PaymentStatus, in.RoomID, in.OwnerID, id); err != nil {
		if isFKViolation(err) {
			err = ErrConflict
		}
		return model.Tenant{}, err
	}
	if _, err = tx.ExecContext(ctx,
		"UPDATE Tenant_Name SET FirstName = ?, MiddleName = ?, LastName = ? WHERE TenantID = ?",
		in.FirstName, in.MiddleName, in.LastName, id); err != nil {
		return model.Tenant{}, err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM tenant_Phone WHERE TenantID = ?", id); err != nil {
		return model.Tenant{}, err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM tenant_Email WHERE TenantID = ?", id); err != nil {
		return model.Tenant{}, err
	}
	if err = insertContacts(ctx, tx, id, in.Phones, in.Emails); err != nil {
		return model.Tenant{}, err
	}

	if err = tx.Commit(); err != nil {
		return model.Tenant{}, err
	}
	return r.Get(ctx, id)
}

func insertContacts(ctx context.Context, tx *sql.Tx, id int64, phones, emails []string) error {
	for _, p := range phones {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tenant_Phone (TenantID, tenant_Phone) VALUES (?, ?)", id, p); err != nil {
			return err
		}
	}
	for _, e := range emails {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tenant_Email (TenantID, tenant_Email) VALUES (?, ?)", id, e); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus changes only the payment status. It returns
// ErrTenantNotFound when no row is affected.
func (r *TenantRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE Tenant SET PaymentStatus = ? WHERE TenantID = ?", status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTenantNotFound
	}
	return nil
}

// Delete removes the aggregate in dependency order: phones, emails, name,
// then the core row, all in one transaction. Existence is checked by the
// affected-row count of the final delete; a missing tenant rolls the
// earlier (vacuous) deletes back and returns ErrTenantNotFound.
func (r *TenantRepo) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, q := range []string{
		"DELETE FROM tenant_Phone WHERE TenantID = ?",
		"DELETE FROM tenant_Email WHERE TenantID = ?",
		"DELETE FROM Tenant_Name WHERE TenantID = ?",
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM Tenant WHERE TenantID = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrTenantNotFound
		return err
	}
	return nil
}

// Login matches the assembled view by id and the exact space-joined full
// name. The comparison is case-sensitive with no partial matching;
// ErrTenantNotFound is returned when nothing matches.
func (r *TenantRepo) Login(ctx context.Context, id int64, name string) (model.Tenant, error) {
	row := r.db.QueryRowContext(ctx,
		assembledSelect+`
WHERE t.TenantID = ? AND CONCAT_WS(' ', tn.FirstName, tn.MiddleName, tn.LastName) = ?
GROUP BY t.TenantID
LIMIT 1`, id, name)
	t, err := scanTenant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tenant{}, ErrTenantNotFound
	}
	return t, err
}

// TotalDue invokes the GetTotalRentDue stored function for a tenant. The
// function is owned by the schema; this layer treats it as opaque. A NULL
// result is reported as 0 so callers never see a null amount.
func (r *TenantRepo) TotalDue(ctx context.Context, id int64) (float64, error) {
	var due sql.NullFloat64
	if err := r.db.QueryRowContext(ctx,
		"SELECT GetTotalRentDue(?) AS TotalDue", id).Scan(&due); err != nil {
		return 0, err
	}
	if !due.Valid {
		return 0, nil
	}
	return due.Float64, nil
}
