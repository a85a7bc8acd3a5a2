package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/pantryhq/shoplist/internal/models"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

var sectionColumns = []string{"id", "store_id", "name", "created_at", "updated_at"}

type SectionStore struct {
	db QueryInterceptor
}

func NewSectionStore(db QueryInterceptor) *SectionStore {
	return &SectionStore{db: db}
}

// List returns sections in their display order.
func (s *SectionStore) List(ctx context.Context, opts ...ListOption) ([]models.Section, error) {
	builder := sq.Select(sectionColumns...).From("sections").OrderBy("store_id", "ord", "id")

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

	sections := []models.Section{}
	for rows.Next() {
		var sec models.Section
		if err := rows.Scan(&sec.ID, &sec.StoreID, &sec.Name, &sec.CreatedAt, &sec.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

func (s *SectionStore) Get(ctx context.Context, id int64) (*models.Section, error) {
	query, args, err := sq.Select(sectionColumns...).From("sections").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var sec models.Section
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sec.ID, &sec.StoreID, &sec.Name, &sec.CreatedAt, &sec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewSectionNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

// Create appends a section to the store.
func (s *SectionStore) Create(ctx context.Context, storeID int64, name string) (*models.Section, error) {
	var ord int
	if err := s.db.QueryRowContext(ctx, queryNextSectionOrd, storeID).Scan(&ord); err != nil {
		return nil, err
	}

	sec := &models.Section{StoreID: storeID, Name: name}
	err := s.db.QueryRowContext(ctx, queryInsertSection, storeID, name, ord).Scan(&sec.ID, &sec.CreatedAt, &sec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *SectionStore) Rename(ctx context.Context, id int64, name string) error {
	return execOne(ctx, s.db, srvErrors.NewSectionNotFoundError(id), queryRenameSection, name, id)
}

// Reorder sets the position of every section of the store to its index in ids.
func (s *SectionStore) Reorder(ctx context.Context, storeID int64, ids []int64) error {
	for i, id := range ids {
		if err := execOne(ctx, s.db, srvErrors.NewSectionNotFoundError(id), querySetSectionOrd, i, id, storeID); err != nil {
			return err
		}
	}
	return nil
}

func (s *SectionStore) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, s.db, srvErrors.NewSectionNotFoundError(id), queryDeleteSection, id)
}

func (s *SectionStore) DeleteByShop(ctx context.Context, storeID int64) error {
	_, err := s.db.ExecContext(ctx, queryDeleteSectionsByShop, storeID)
	return err
}
