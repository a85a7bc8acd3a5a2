// Package v1 holds the wire types and routing of the shopping list HTTP API.
package v1

import "time"

// Item defines model for Item.
type Item struct {
	Id        int64     `json:"id"`
	StoreId   *int64    `json:"store_id,omitempty"`
	SectionId *int64    `json:"section_id,omitempty"`
	Name      string    `json:"name"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store defines model for Store.
type Store struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section defines model for Section.
type Section struct {
	Id        int64     `json:"id"`
	StoreId   int64     `json:"store_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemList defines model for ItemList.
type ItemList struct {
	Unassigned []Item          `json:"unassigned"`
	Stores     []ItemListStore `json:"stores"`
}

// ItemListStore defines model for ItemListStore.
type ItemListStore struct {
	Store
	Unassigned []Item            `json:"unassigned"`
	Sections   []ItemListSection `json:"sections"`
}

// ItemListSection defines model for ItemListSection.
type ItemListSection struct {
	Section
	Items []Item `json:"items"`
}

// CreateItemRequest defines model for CreateItemRequest.
type CreateItemRequest struct {
	StoreId   *int64 `json:"store_id,omitempty"`
	SectionId *int64 `json:"section_id,omitempty"`
	Name      string `json:"name"`
}

// MoveItemRequest defines model for MoveItemRequest.
type MoveItemRequest struct {
	StoreId   *int64 `json:"store_id"`
	SectionId *int64 `json:"section_id"`
	Index     int    `json:"index"`
}

// SetCheckedRequest defines model for SetCheckedRequest. An empty body checks the item.
type SetCheckedRequest struct {
	Checked *bool `json:"checked,omitempty"`
}

// NameRequest defines model for NameRequest, used to create or rename stores and sections.
type NameRequest struct {
	Name string `json:"name"`
}

// ReorderSectionsRequest defines model for ReorderSectionsRequest.
type ReorderSectionsRequest struct {
	Ids []int64 `json:"ids"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}
