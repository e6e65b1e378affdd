package model

import "time"

// Tenant is the assembled read model of the tenant aggregate: the core
// Tenant row joined with its Tenant_Name row and the duplicate-collapsed,
// comma-joined phone and email sets. Phones/Contact and Emails/Email carry
// identical values; the alias pairs exist because different frontends
// expect different field names.
type Tenant struct {
	TenantID      int64      `json:"TenantID"`
	FirstName     string     `json:"FirstName"`
	MiddleName    string     `json:"MiddleName"`
	LastName      string     `json:"LastName"`
	FullName      string     `json:"FullName,omitempty"` // only populated by the composite view
	CheckInDate   time.Time  `json:"CheckInDate"`
	CheckOutDate  *time.Time `json:"CheckOutDate"`
	PaymentStatus string     `json:"PaymentStatus"` // Pending, Paid, ...
	RoomID        int64      `json:"RoomID"`
	OwnerID       int64      `json:"OwnerID"`
	Phones        string     `json:"Phones"`
	Emails        string     `json:"Emails"`
	Contact       string     `json:"Contact"` // alias of Phones
	Email         string     `json:"Email"`   // alias of Emails
}
