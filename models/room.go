package models

import "time"

// RoomCapacity is the maximum occupancy a room accepts.
type RoomCapacity struct {
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
}

// Room represents a bookable hotel room. The Available flag is the single
// source of truth for whether the room can be booked right now; it is flipped
// only by the booking service (claim/release) or by catalog management.
type Room struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Type        string       `bson:"type" json:"type"`
	Description string       `bson:"description" json:"description"`
	Image       string       `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64      `bson:"price" json:"price"`
	Capacity    RoomCapacity `bson:"capacity" json:"capacity"`
	Size        string       `bson:"size,omitempty" json:"size,omitempty"`
	Bed         string       `bson:"bed,omitempty" json:"bed,omitempty"`
	Amenities   []string     `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Available   bool         `bson:"available" json:"available"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
}

// RoomUpdate carries the admin-updatable room fields. Only fields present
// (non-nil) are applied; anything else on the document is untouchable from
// the update endpoint.
type RoomUpdate struct {
	Name        *string       `json:"name,omitempty"`
	Type        *string       `json:"type,omitempty"`
	Description *string       `json:"description,omitempty"`
	Image       *string       `json:"image,omitempty"`
	Price       *float64      `json:"price,omitempty"`
	Capacity    *RoomCapacity `json:"capacity,omitempty"`
	Size        *string       `json:"size,omitempty"`
	Bed         *string       `json:"bed,omitempty"`
	Amenities   []string      `json:"amenities,omitempty"`
	Available   *bool         `json:"available,omitempty"`
}
