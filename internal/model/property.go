package model

// Property is a building owned by a single owner. Deleting a property
// also deletes its rooms; the cascade lives in the repository, not the
// schema.
type Property struct {
	PropertyID int64  `json:"PropertyID"` // Property.PropertyID
	Name       string `json:"name"`       // Property.name
	Location   string `json:"location"`   // Property.location
	TotalRooms int    `json:"TotalRooms"` // Property.TotalRooms
	OwnerID    int64  `json:"OwnerID"`    // Property.OwnerID
}

// Room is a rentable unit inside a property.
type Room struct {
	RoomID       int64   `json:"RoomID"`       // Room.RoomID
	BedCount     int     `json:"BedCount"`     // Room.BedCount
	OccupiedBeds int     `json:"OccupiedBeds"` // Room.OccupiedBeds
	RentAmount   float64 `json:"RentAmount"`   // Room.RentAmount
	RoomType     string  `json:"RoomType"`     // Room.RoomType
	PropertyID   int64   `json:"PropertyID"`   // Room.PropertyID
}
