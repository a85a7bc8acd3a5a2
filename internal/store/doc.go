// Package store implements the data access layer of the shopping list backend.
//
// Data lives in DuckDB. Tables are created by the embedded migrations in
// internal/store/migrations.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────┬─────────────────────┬─────────────────────┤
//	│     ShopStore       │    SectionStore     │     ItemStore       │
//	│         ▼           │         ▼           │         ▼           │
//	│      stores         │      sections       │       items         │
//	├─────────────────────┴─────────────────────┴─────────────────────┤
//	│                       QueryInterceptor                          │
//	│                      *sql.DB  |  *sql.Tx                        │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  stores            │  Shops items can be bought at               │
//	│  sections          │  Aisles of a store, ordered by ord          │
//	│  items             │  List entries, ordered by ord per container │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// Ids come from sequences (stores_id_seq, sections_id_seq, items_id_seq).
// There are no foreign keys; referential rules live in internal/services.
//
// # Containers
//
// An item belongs to exactly one container, given by (store_id, section_id):
//
//	(NULL, NULL)   global unassigned pool
//	(S,    NULL)   unassigned pool of store S
//	(S,    X)      section X of store S
//
// ord is the position inside the container. New rows get MAX(ord)+1.
// ItemStore.Place rewrites ord for a whole container at once, so positions stay
// dense after a move; MoveAll shifts a container past the end of another one.
//
// # List Options
//
// ItemStore.List and SectionStore.List take functional options that modify the
// squirrel.SelectBuilder:
//
//	items, err := s.Items().List(ctx,
//	    store.InContainer(&storeID, nil),
//	    store.ByChecked(false),
//	)
//
// # Transactions
//
// WithTx hands fn a Store whose repositories run on the transaction. Write
// transactions are serialized with a mutex shared by every Store built from the
// same NewStore call. fn must not call WithTx again.
//
// # QueryInterceptor
//
// Every statement goes through a QueryInterceptor that logs it at debug level
// with its arguments and duration.
package store
