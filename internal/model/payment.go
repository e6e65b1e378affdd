package model

import "time"

// Payment records a rent payment by a tenant. Rows are written by the
// full-payment workflow with Status "Paid" and the amount computed by the
// GetTotalRentDue stored function.
type Payment struct {
	PaymentID   int64     `json:"PaymentID"`
	TenantID    int64     `json:"TenantID"`
	Amount      float64   `json:"Amount"`
	Date        time.Time `json:"Date"`
	PaymentMode string    `json:"PaymentMode"`
	Status      string    `json:"Status"`
}
