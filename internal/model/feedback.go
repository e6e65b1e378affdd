package model

import "time"

// Feedback is a rating and message submitted by a tenant.
type Feedback struct {
	FeedbackID    int64     `json:"FeedbackID"`
	Category      string    `json:"Category"`
	Message       string    `json:"Message"`
	Rating        int       `json:"Rating"`
	TenantID      int64     `json:"TenantID"`
	DateSubmitted time.Time `json:"DateSubmitted"`
}
