// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// PaymentRecordedEvent is published after a full payment commits. It
// carries enough for downstream consumers to build receipts or ledgers
// without querying the primary database.
type PaymentRecordedEvent struct {
	PaymentID   int64   `json:"payment_id"`
	TenantID    int64   `json:"tenant_id"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"payment_mode"`
	Status      string  `json:"status"`
	RecordedAt  string  `json:"recorded_at"`
}
