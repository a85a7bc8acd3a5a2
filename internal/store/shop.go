package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/pantryhq/shoplist/internal/models"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

var shopColumns = []string{"id", "name", "created_at", "updated_at"}

// ShopStore persists the stores items can be assigned to.
type ShopStore struct {
	db QueryInterceptor
}

func NewShopStore(db QueryInterceptor) *ShopStore {
	return &ShopStore{db: db}
}

// List returns the stores sorted by name.
func (s *ShopStore) List(ctx context.Context) ([]models.Store, error) {
	query, args, err := sq.Select(shopColumns...).From("stores").OrderBy("name", "id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := []models.Store{}
	for rows.Next() {
		var shop models.Store
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.CreatedAt, &shop.UpdatedAt); err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

func (s *ShopStore) Get(ctx context.Context, id int64) (*models.Store, error) {
	query, args, err := sq.Select(shopColumns...).From("stores").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var shop models.Store
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&shop.ID, &shop.Name, &shop.CreatedAt, &shop.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewStoreNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (s *ShopStore) Create(ctx context.Context, name string) (*models.Store, error) {
	shop := &models.Store{Name: name}
	err := s.db.QueryRowContext(ctx, queryInsertShop, name).Scan(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopStore) Rename(ctx context.Context, id int64, name string) error {
	return execOne(ctx, s.db, srvErrors.NewStoreNotFoundError(id), queryRenameShop, name, id)
}

func (s *ShopStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.db, srvErrors.NewStoreNotFoundError(id), queryDeleteShop, id)
}

// execOne runs query and returns notFound when no row was touched.
func execOne(ctx context.Context, db QueryInterceptor, notFound error, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
