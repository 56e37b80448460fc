package model

import "time"

// Floor represents a building level as stored in the `floors` table.
// Each floor owns zero or more shops.  FloorNumber is the level number
// shown on the dashboard; it is not unique, two floors may legitimately
// share a number (e.g. two wings of the same level).
//
// Fields:
//  ID          – primary key identifier.
//  Name        – human readable label (e.g. "Ground Floor").
//  FloorNumber – integer level number used for grouping views.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Floor struct {
	ID          uint64    `json:"id"`          // floors.id
	Name        string    `json:"name"`        // floors.name
	FloorNumber int       `json:"floorNumber"` // floors.floor_number
	CreatedAt   time.Time `json:"createdAt"`   // floors.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // floors.updated_at
}
