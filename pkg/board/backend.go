package board

import (
	"context"

	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/models"
)

// Backend is the request/response contract the engine commits through.
type Backend interface {
	ListItems(ctx context.Context) (*models.ItemList, error)
	MoveItem(ctx context.Context, id int64, req models.MoveItemRequest) error
	CheckItem(ctx context.Context, id int64) error
	ListSections(ctx context.Context, storeID int64) ([]models.Section, error)
	ReorderSections(ctx context.Context, storeID int64, ids []int64) error
}

// Notifier surfaces non fatal failures to the user (a toast in a UI).
type Notifier interface {
	Notify(err error)
}

type NotifierFunc func(err error)

func (f NotifierFunc) Notify(err error) {
	f(err)
}

// LogNotifier reports failures through the global logger.
type LogNotifier struct{}

func (LogNotifier) Notify(err error) {
	zap.S().Named("board").Errorw("operation failed", "error", err)
}
