package model

import "time"

// Shop status values.  The `status` column is declared as an ENUM with
// exactly these two members, and handlers reject anything else before a
// statement is ever issued.
const (
	StatusAvailable = "AVAILABLE"
	StatusSold      = "SOLD"
)

// ValidStatus reports whether s is one of the recognised shop statuses.
func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusSold
}

// Shop represents a sellable unit located on a floor, mirroring the
// `shops` table.  Every shop references exactly one floor; the Floor
// field is populated on read paths that join floor data and left nil
// elsewhere.
//
// Fields:
//  ID         – primary key identifier.
//  ShopNumber – display number such as "G-01"; unique per floor by
//               convention only, not enforced.
//  Size       – free form size description (e.g. "200sqft").
//  Status     – AVAILABLE or SOLD; new shops default to AVAILABLE.
//  FloorID    – foreign key into floors; required.
//  Floor      – nested floor record when the query included the join.
type Shop struct {
	ID         uint64    `json:"id"`              // shops.id
	ShopNumber string    `json:"shopNumber"`      // shops.shop_number
	Size       string    `json:"size"`            // shops.size
	Status     string    `json:"status"`          // shops.status
	FloorID    uint64    `json:"floorId"`         // shops.floor_id
	Floor      *Floor    `json:"floor,omitempty"` // joined floor, nil when not loaded
	CreatedAt  time.Time `json:"createdAt"`       // shops.created_at
	UpdatedAt  time.Time `json:"updatedAt"`       // shops.updated_at
}
