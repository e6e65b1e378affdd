package repository

import (
	"context"
	"database/sql"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/model"
)

// FeedbackRepo encapsulates all database queries related to feedback.
type FeedbackRepo struct {
	db *sql.DB
}

// NewFeedbackRepo constructs a FeedbackRepo with the provided DB handle.
func NewFeedbackRepo(db *sql.DB) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

const feedbackColumns = "FeedbackID, Category, Message, Rating, TenantID, DateSubmitted"

func scanFeedback(rows *sql.Rows) ([]model.Feedback, error) {
	defer rows.Close()
	out := []model.Feedback{}
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.FeedbackID, &f.Category, &f.Message, &f.Rating, &f.TenantID, &f.DateSubmitted); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// List returns all feedback rows ordered by id.
func (r *FeedbackRepo) List(ctx context.Context) ([]model.Feedback, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+feedbackColumns+" FROM Feedback ORDER BY FeedbackID")
	if err != nil {
		return nil, err
	}
	return scanFeedback(rows)
}

// ListByTenant returns one tenant's feedback, used by the composite
// tenant view.
func (r *FeedbackRepo) ListByTenant(ctx context.Context, tenantID int64) ([]model.Feedback, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+feedbackColumns+" FROM Feedback WHERE TenantID = ? ORDER BY FeedbackID", tenantID)
	if err != nil {
		return nil, err
	}
	return scanFeedback(rows)
}

// Create inserts feedback dated today and returns its auto-generated id.
// ErrConflict is returned when TenantID references a missing tenant.
func (r *FeedbackRepo) Create(ctx context.Context, category, message string, rating int, tenantID int64) (int64, error) {
	const q = `INSERT INTO Feedback (Category, Message, Rating, TenantID, DateSubmitted)
	           VALUES (?, ?, ?, ?, CURDATE())`
	res, err := r.db.ExecContext(ctx, q, category, message, rating, tenantID)
	if err != nil {
		if isFKViolation(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	return res.LastInsertId()
}
