package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/store"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

// ShopService manages the stores items are bought at.
type ShopService struct {
	store *store.Store
}

func NewShopService(st *store.Store) *ShopService {
	return &ShopService{store: st}
}

func (s *ShopService) List(ctx context.Context) ([]models.Store, error) {
	return s.store.Shops().List(ctx)
}

func (s *ShopService) Create(ctx context.Context, name string) (*models.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, srvErrors.NewValidationError("store name is required")
	}
	return s.store.Shops().Create(ctx, name)
}

func (s *ShopService) Rename(ctx context.Context, id int64, name string) (*models.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, srvErrors.NewValidationError("store name is required")
	}
	if err := s.store.Shops().Rename(ctx, id, name); err != nil {
		return nil, err
	}
	return s.store.Shops().Get(ctx, id)
}

// Delete removes the store and its sections. Its items, sections included,
// are appended to the global unassigned pool.
func (s *ShopService) Delete(ctx context.Context, id int64) error {
	return s.store.WithTx(ctx, func(tx *store.Store) error {
		if _, err := tx.Shops().Get(ctx, id); err != nil {
			return err
		}
		if err := tx.Items().MoveAll(ctx, &id, nil, nil, nil); err != nil {
			return err
		}
		if err := tx.Sections().DeleteByShop(ctx, id); err != nil {
			return err
		}
		if err := tx.Shops().Delete(ctx, id); err != nil {
			return err
		}

		zap.S().Named("shop_service").Infow("store deleted", "store_id", id)
		return nil
	})
}
