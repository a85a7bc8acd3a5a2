package services

import (
	"context"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/store"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

type SectionService struct {
	store *store.Store
}

func NewSectionService(st *store.Store) *SectionService {
	return &SectionService{store: st}
}

// List returns the sections of a store in display order.
func (s *SectionService) List(ctx context.Context, storeID int64) ([]models.Section, error) {
	if _, err := s.store.Shops().Get(ctx, storeID); err != nil {
		return nil, err
	}
	return s.store.Sections().List(ctx, store.ByStore(storeID))
}

// Create appends a section to the store.
func (s *SectionService) Create(ctx context.Context, storeID int64, name string) (*models.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, srvErrors.NewValidationError("section name is required")
	}

	var created *models.Section
	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		if _, err := tx.Shops().Get(ctx, storeID); err != nil {
			return err
		}
		var err error
		created, err = tx.Sections().Create(ctx, storeID, name)
		return err
	})
	return created, err
}

func (s *SectionService) Rename(ctx context.Context, id int64, name string) (*models.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, srvErrors.NewValidationError("section name is required")
	}
	if err := s.store.Sections().Rename(ctx, id, name); err != nil {
		return nil, err
	}
	return s.store.Sections().Get(ctx, id)
}

// Reorder sets the order of the store's sections. ids must hold every section
// of the store exactly once.
func (s *SectionService) Reorder(ctx context.Context, storeID int64, ids []int64) ([]models.Section, error) {
	var reordered []models.Section
	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		if _, err := tx.Shops().Get(ctx, storeID); err != nil {
			return err
		}

		current, err := tx.Sections().List(ctx, store.ByStore(storeID))
		if err != nil {
			return err
		}

		want := sets.New[int64]()
		for _, sec := range current {
			want.Insert(sec.ID)
		}
		got := sets.New(ids...)
		if len(ids) != got.Len() {
			return srvErrors.NewValidationError("section ids must be unique")
		}
		if !got.Equal(want) {
			return srvErrors.NewValidationError("section ids must match the sections of store %d: missing %v, unknown %v",
				storeID, sets.List(want.Difference(got)), sets.List(got.Difference(want)))
		}

		if err := tx.Sections().Reorder(ctx, storeID, ids); err != nil {
			return err
		}
		reordered, err = tx.Sections().List(ctx, store.ByStore(storeID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return reordered, nil
}

// Delete removes the section and appends its items to the store's unassigned pool.
func (s *SectionService) Delete(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(tx *store.Store) error {
		section, err := tx.Sections().Get(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Items().MoveAll(ctx, &section.StoreID, &section.ID, &section.StoreID, nil); err != nil {
			return err
		}
		return tx.Sections().Delete(ctx, id)
	})
}
