// Package queue defines message payloads exchanged over the message broker.
package queue

// ShopSoldEvent is published when a shop's status transitions to SOLD.
// It contains enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type ShopSoldEvent struct {
	ShopID      uint64 `json:"shop_id"`
	ShopNumber  string `json:"shop_number"`
	Size        string `json:"size"`
	FloorID     uint64 `json:"floor_id"`
	FloorName   string `json:"floor_name"`
	FloorNumber int    `json:"floor_number"`
	SoldAt      string `json:"sold_at"`
}
