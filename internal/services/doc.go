// Package services implements the business rules of the shopping list backend.
//
// Services sit between the HTTP handlers and the store. They validate requests,
// resolve placements and group every multi-statement change in one transaction.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── ItemService ────► Store (items, sections, stores)
//	    ├── ShopService ────► Store (stores, sections, items)
//	    └── SectionService ─► Store (sections, stores, items)
//
// # Placement rules
//
// A placement is a (store_id, section_id) pair naming one container.
//
//	┌───────────────────┬──────────────────────────────────────────────┐
//	│  Request          │  Result                                      │
//	├───────────────────┼──────────────────────────────────────────────┤
//	│  neither          │  global unassigned pool                      │
//	│  store only       │  store's unassigned pool, 404 if unknown     │
//	│  section only     │  section, store filled from the section      │
//	│  both             │  section, 409 if it belongs to another store │
//	└───────────────────┴──────────────────────────────────────────────┘
//
// # ItemService
//
//   - List groups unchecked items: global pool, then per store (by name) its
//     pool and its sections (by ord). Items pointing at a store or section
//     that no longer exists are listed in the global pool.
//   - Create appends the item at the end of its container.
//   - Move removes the item from its container, inserts it at the clamped index
//     of the target container and rewrites ord for the whole target container.
//   - SetChecked marks an item; checked items are no longer listed.
//
// # ShopService and SectionService
//
// Deleting a store appends all its items to the global pool and drops its
// sections. Deleting a section appends its items to the store's pool.
// Reordering sections needs the full set of the store's section ids.
package services
