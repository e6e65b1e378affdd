package model

import "time"

// ServiceRequest is a maintenance request raised by a tenant, optionally
// assigned to a staff member. DateResolved stays NULL until the request
// is completed.
type ServiceRequest struct {
	RequestID    int64      `json:"RequestID"`
	Category     string     `json:"Category"`
	Description  string     `json:"Description"`
	Status       string     `json:"Status"` // Pending, Completed, ...
	DateRaised   time.Time  `json:"DateRaised"`
	DateResolved *time.Time `json:"DateResolved"`
	TenantID     int64      `json:"TenantID"`
	StaffID      *int64     `json:"StaffID"`
}

// ServiceRequestView is the joined listing row: the request plus the
// tenant's full name, room and owner, and the assigned staff member's
// details when one is set.
type ServiceRequestView struct {
	ServiceRequest
	TenantName   string  `json:"TenantName"`
	RoomID       int64   `json:"RoomID"`
	OwnerID      int64   `json:"OwnerID"`
	StaffName    *string `json:"StaffName"`
	StaffContact *string `json:"StaffContact"`
	StaffRole    *string `json:"StaffRole"`
}
