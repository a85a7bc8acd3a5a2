// Package handlers implements the HTTP API layer of the shopping list backend.
//
// Handlers delegate business logic to the services layer and focus on request
// binding, response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Body binding                                                 │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│            ItemService │ ShopService │ SectionService           │
//	└─────────────────────────────────────────────────────────────────┘
//
// Handler implements v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router.Group("/api/v1"), handler)
//
// # API Endpoints
//
//	┌────────┬────────────────────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint                       │ Description                          │
//	├────────┼────────────────────────────────┼──────────────────────────────────────┤
//	│ GET    │ /items                         │ Unchecked items grouped by container │
//	│ POST   │ /items                         │ Create an item, appended             │
//	│ PUT    │ /items/{id}/move               │ Place an item at an index            │
//	│ PUT    │ /items/{id}/checked            │ Check (or uncheck) an item           │
//	│ GET    │ /stores                        │ List stores by name                  │
//	│ POST   │ /stores                        │ Create a store                       │
//	│ PUT    │ /stores/{id}                   │ Rename a store                       │
//	│ DELETE │ /stores/{id}                   │ Delete a store                       │
//	│ GET    │ /stores/{id}/sections          │ List sections in order               │
//	│ POST   │ /stores/{id}/sections          │ Create a section, appended           │
//	│ PUT    │ /stores/{id}/sections/reorder  │ Set the order of all sections        │
//	│ PUT    │ /sections/{id}                 │ Rename a section                     │
//	│ DELETE │ /sections/{id}                 │ Delete a section                     │
//	└────────┴────────────────────────────────┴──────────────────────────────────────┘
//
// PUT /items/{id}/move:
//
// Request:
//
//	{ "store_id": 7, "section_id": null, "index": 1 }
//
// Response: 200 with the moved item.
//
// # Error Handling
//
// Errors are returned as JSON:
//
//	{ "error": "section 3 doesn't belong to store 7" }
//
//	┌────────────────────────────┬─────────────┐
//	│  Error                     │  Status     │
//	├────────────────────────────┼─────────────┤
//	│  invalid body or path id   │  400        │
//	│  ValidationError           │  400        │
//	│  ResourceNotFoundError     │  404        │
//	│  ConflictError             │  409        │
//	│  anything else             │  500        │
//	└────────────────────────────┴─────────────┘
package handlers
