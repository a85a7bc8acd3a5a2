package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/store"
	"github.com/pantryhq/shoplist/internal/util"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

type ItemService struct {
	store *store.Store
}

func NewItemService(st *store.Store) *ItemService {
	return &ItemService{store: st}
}

// List returns every unchecked item grouped by store and section.
func (s *ItemService) List(ctx context.Context) (*models.ItemList, error) {
	shops, err := s.store.Shops().List(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := s.store.Sections().List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Items().List(ctx, store.ByChecked(false))
	if err != nil {
		return nil, err
	}

	list := &models.ItemList{Unassigned: []models.Item{}, Stores: make([]models.ItemListStore, 0, len(shops))}

	storeIdx := make(map[int64]int, len(shops))
	for i, shop := range shops {
		storeIdx[shop.ID] = i
		list.Stores = append(list.Stores, models.ItemListStore{
			Store:      shop,
			Unassigned: []models.Item{},
			Sections:   []models.ItemListSection{},
		})
	}

	type sectionPos struct{ store, section int }
	sectionIdx := make(map[int64]sectionPos, len(sections))
	for _, sec := range sections {
		si, ok := storeIdx[sec.StoreID]
		if !ok {
			continue
		}
		ls := &list.Stores[si]
		sectionIdx[sec.ID] = sectionPos{store: si, section: len(ls.Sections)}
		ls.Sections = append(ls.Sections, models.ItemListSection{Section: sec, Items: []models.Item{}})
	}

	for _, item := range items {
		switch {
		case item.SectionID != nil:
			pos, ok := sectionIdx[*item.SectionID]
			if ok && item.StoreID != nil && list.Stores[pos.store].ID == *item.StoreID {
				sec := &list.Stores[pos.store].Sections[pos.section]
				sec.Items = append(sec.Items, item)
				continue
			}
		case item.StoreID != nil:
			if si, ok := storeIdx[*item.StoreID]; ok {
				list.Stores[si].Unassigned = append(list.Stores[si].Unassigned, item)
				continue
			}
		default:
			list.Unassigned = append(list.Unassigned, item)
			continue
		}

		zap.S().Named("item_service").Warnw("item placed in a missing store or section, listing it as unassigned",
			"item_id", item.ID, "store_id", item.StoreID, "section_id", item.SectionID)
		item.StoreID, item.SectionID = nil, nil
		list.Unassigned = append(list.Unassigned, item)
	}

	return list, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.store.Items().Get(ctx, id)
}

// Create appends a new item at the end of its container.
func (s *ItemService) Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, srvErrors.NewValidationError("item name is required")
	}

	var created *models.Item
	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		storeID, sectionID, err := resolvePlacement(ctx, tx, req.StoreID, req.SectionID)
		if err != nil {
			return err
		}
		created, err = tx.Items().Create(ctx, storeID, sectionID, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Move places item id at req.Index of the container named by req. The index is
// clamped to the container bounds and counted without the item itself.
func (s *ItemService) Move(ctx context.Context, id int64, req models.MoveItemRequest) (*models.Item, error) {
	var moved *models.Item
	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		item, err := tx.Items().Get(ctx, id)
		if err != nil {
			return err
		}

		storeID, sectionID, err := resolvePlacement(ctx, tx, req.StoreID, req.SectionID)
		if err != nil {
			return err
		}

		ids, err := tx.Items().ContainerIDs(ctx, storeID, sectionID)
		if err != nil {
			return err
		}
		ordered := util.InsertAt(util.Remove(ids, id), req.Index, id)

		if err := tx.Items().Place(ctx, id, storeID, sectionID, ordered); err != nil {
			return err
		}

		zap.S().Named("item_service").Debugw("item moved",
			"item_id", id,
			"from_store", item.StoreID, "from_section", item.SectionID,
			"to_store", storeID, "to_section", sectionID,
			"index", util.IndexOf(ordered, id))

		moved, err = tx.Items().Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// SetChecked marks the item; checked items drop out of List.
func (s *ItemService) SetChecked(ctx context.Context, id int64, checked bool) error {
	return s.store.Items().SetChecked(ctx, id, checked)
}
