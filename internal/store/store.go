package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// Store provides access to all storage repositories.
type Store struct {
	db       *sql.DB
	mu       *sync.Mutex
	items    *ItemStore
	shops    *ShopStore
	sections *SectionStore
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, NewQueryInterceptor(db), &sync.Mutex{})
}

func newStore(db *sql.DB, q QueryInterceptor, mu *sync.Mutex) *Store {
	return &Store{
		db:       db,
		mu:       mu,
		items:    NewItemStore(q),
		shops:    NewShopStore(q),
		sections: NewSectionStore(q),
	}
}

func (s *Store) Items() *ItemStore {
	return s.items
}

// Shops returns the repository of the stores table. Named so to keep it apart
// from Store itself.
func (s *Store) Shops() *ShopStore {
	return s.shops
}

func (s *Store) Sections() *SectionStore {
	return s.sections
}

// WithTx runs fn in a transaction. The Store handed to fn is bound to the
// transaction; write transactions are serialized.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(newStore(nil, NewQueryInterceptor(tx), s.mu)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
