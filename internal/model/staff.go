package model

// Staff is a maintenance or service worker who can be assigned to
// service requests. StaffID is admin-assigned like OwnerID.
type Staff struct {
	StaffID            int64  `json:"StaffID"`            // Staff.StaffID
	Name               string `json:"name"`               // Staff.name
	Role               string `json:"role"`               // Staff.role
	Contact            string `json:"contact"`            // Staff.contact
	AvailabilityStatus string `json:"AvailabilityStatus"` // Available / Unavailable
}
