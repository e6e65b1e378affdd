// Package model declares the persisted entities of the rental management
// system. JSON tags mirror the column names of the MySQL schema exactly,
// because existing frontends consume the rows as the database returns them.
package model

// Owner is a landlord who owns properties and is referenced by tenants.
// OwnerID is assigned by the admin when the owner is registered, not by
// the database.
type Owner struct {
	OwnerID int64  `json:"OwnerID"` // Owner.OwnerID
	Name    string `json:"name"`    // Owner.name
	Phone   string `json:"phone"`   // Owner.phone
	Email   string `json:"email"`   // Owner.email
	Address string `json:"address"` // Owner.address
}
