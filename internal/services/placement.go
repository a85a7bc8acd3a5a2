package services

import (
	"context"

	"github.com/pantryhq/shoplist/internal/store"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
)

// resolvePlacement validates a (store, section) pair and fills the store of a
// section given alone.
func resolvePlacement(ctx context.Context, st *store.Store, storeID, sectionID *int64) (*int64, *int64, error) {
	if sectionID != nil {
		section, err := st.Sections().Get(ctx, *sectionID)
		if err != nil {
			return nil, nil, err
		}
		if storeID != nil && *storeID != section.StoreID {
			return nil, nil, srvErrors.NewSectionStoreMismatchError(section.ID, *storeID)
		}
		owner := section.StoreID
		return &owner, sectionID, nil
	}

	if storeID != nil {
		if _, err := st.Shops().Get(ctx, *storeID); err != nil {
			return nil, nil, err
		}
	}
	return storeID, nil, nil
}
