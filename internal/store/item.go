package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/pantryhq/shoplist/internal/models"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

var itemColumns = []string{"id", "store_id", "section_id", "name", "checked", "created_at", "updated_at"}

type ItemStore struct {
	db QueryInterceptor
}

func NewItemStore(db QueryInterceptor) *ItemStore {
	return &ItemStore{db: db}
}

// List returns items ordered by their position, ties broken by id.
func (s *ItemStore) List(ctx context.Context, opts ...ListOption) ([]models.Item, error) {
	builder := sq.Select(itemColumns...).From("items").OrderBy("ord", "id")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

func (s *ItemStore) Get(ctx context.Context, id int64) (*models.Item, error) {
	query, args, err := sq.Select(itemColumns...).From("items").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanItem(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewItemNotFoundError(id)
	}
	return item, err
}

// Create appends a new item to the container (storeID, sectionID).
func (s *ItemStore) Create(ctx context.Context, storeID, sectionID *int64, name string) (*models.Item, error) {
	ord, err := s.nextOrd(ctx, storeID, sectionID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{StoreID: storeID, SectionID: sectionID, Name: name}
	err = s.db.QueryRowContext(ctx, queryInsertItem, nullable(storeID), nullable(sectionID), name, ord).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ContainerIDs returns the ids of the unchecked items of a container in order.
func (s *ItemStore) ContainerIDs(ctx context.Context, storeID, sectionID *int64) ([]int64, error) {
	query, args, err := sq.Select("id").From("items").
		Where(inContainer(storeID, sectionID)).
		Where(sq.Eq{"checked": false}).
		OrderBy("ord", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Place stores ordered as the full content of container (storeID, sectionID).
// Item id is moved into the container, the others only get their position.
func (s *ItemStore) Place(ctx context.Context, id int64, storeID, sectionID *int64, ordered []int64) error {
	for i, itemID := range ordered {
		builder := sq.Update("items").
			Set("ord", i).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": itemID})
		if itemID == id {
			builder = builder.
				Set("store_id", nullable(storeID)).
				Set("section_id", nullable(sectionID))
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// MoveAll appends every item of the container from to the container to.
// A nil fromSection with a non nil fromStore matches every item of that store.
func (s *ItemStore) MoveAll(ctx context.Context, fromStore, fromSection, toStore, toSection *int64) error {
	base, err := s.nextOrd(ctx, toStore, toSection)
	if err != nil {
		return err
	}

	var where sq.Sqlizer = inContainer(fromStore, fromSection)
	if fromStore != nil && fromSection == nil {
		where = sq.Eq{"store_id": *fromStore}
	}

	query, args, err := sq.Update("items").
		Set("store_id", nullable(toStore)).
		Set("section_id", nullable(toSection)).
		Set("ord", sq.Expr("ord + ?", base)).
		Set("updated_at", sq.Expr("now()")).
		Where(where).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *ItemStore) SetChecked(ctx context.Context, id int64, checked bool) error {
	res, err := s.db.ExecContext(ctx, querySetItemChecked, checked, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return srvErrors.NewItemNotFoundError(id)
	}
	return nil
}

func (s *ItemStore) nextOrd(ctx context.Context, storeID, sectionID *int64) (int, error) {
	query, args, err := sq.Select("COALESCE(MAX(ord) + 1, 0)").From("items").
		Where(inContainer(storeID, sectionID)).
		ToSql()
	if err != nil {
		return 0, err
	}

	var ord int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&ord)
	return ord, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item      models.Item
		storeID   sql.NullInt64
		sectionID sql.NullInt64
	)
	err := row.Scan(&item.ID, &storeID, &sectionID, &item.Name, &item.Checked, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if storeID.Valid {
		item.StoreID = &storeID.Int64
	}
	if sectionID.Valid {
		item.SectionID = &sectionID.Int64
	}
	return &item, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByChecked(checked bool) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"checked": checked})
	}
}

func ByStore(storeID int64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"store_id": storeID})
	}
}

// InContainer keeps the items of exactly one container; nil ids match NULL.
func InContainer(storeID, sectionID *int64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(inContainer(storeID, sectionID))
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func inContainer(storeID, sectionID *int64) sq.Eq {
	return sq.Eq{"store_id": nullable(storeID), "section_id": nullable(sectionID)}
}

func nullable(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
