package models

import "time"

// Item is a single entry of the shopping list.
// StoreID and SectionID are placement hints; SectionID is only set together with StoreID.
type Item struct {
	ID        int64     `json:"id"`
	StoreID   *int64    `json:"store_id,omitempty"`
	SectionID *int64    `json:"section_id,omitempty"`
	Name      string    `json:"name"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoveItemRequest places an item at Index inside the container named by StoreID/SectionID.
type MoveItemRequest struct {
	StoreID   *int64 `json:"store_id"`
	SectionID *int64 `json:"section_id"`
	Index     int    `json:"index"`
}

type CreateItemRequest struct {
	StoreID   *int64 `json:"store_id"`
	SectionID *int64 `json:"section_id"`
	Name      string `json:"name"`
}
