package board

import (
	"context"
	"time"

	"github.com/pantryhq/shoplist/pkg/scheduler"
)

type Options struct {
	CheckDelay        time.Duration
	RollbackOnFailure bool
	Notifier          Notifier
	ControllerOptions []ControllerOption
}

// Board wires the engine components around one backend.
type Board struct {
	backend    Backend
	sched      *scheduler.Scheduler
	notifier   Notifier
	registry   *Registry
	index      *ItemIndex
	mover      *Mover
	sync       *Synchronizer
	controller *Controller
	checker    *Checker
}

// New fetches the item list once and builds the board from it.
func New(ctx context.Context, backend Backend, sched *scheduler.Scheduler, opts Options) (*Board, error) {
	list, err := backend.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = LogNotifier{}
	}

	b := &Board{
		backend:  backend,
		sched:    sched,
		notifier: notifier,
		registry: BuildRegistry(*list),
		index:    NewItemIndex(*list),
	}
	b.mover = NewMover(b.registry)
	b.sync = NewSynchronizer(backend, sched, b.mover, b.index, notifier, opts.RollbackOnFailure)
	b.controller = NewController(b.index, b.registry, b.mover, b.sync, opts.ControllerOptions...)
	b.checker = NewChecker(backend, sched, b.sync, opts.CheckDelay, notifier)

	return b, nil
}

func (b *Board) Registry() *Registry         { return b.registry }
func (b *Board) Index() *ItemIndex           { return b.index }
func (b *Board) Controller() *Controller     { return b.controller }
func (b *Board) Checker() *Checker           { return b.checker }
func (b *Board) Synchronizer() *Synchronizer { return b.sync }

// Place moves itemID to index of key without a drag gesture and commits it.
// It returns nil when the registry did not change.
func (b *Board) Place(itemID int64, key ContainerKey, index int) *scheduler.Future[scheduler.Result[any]] {
	before := b.registry.Snapshot()
	if !b.mover.MoveToIndex(itemID, key, index) {
		return nil
	}
	movesTotal.WithLabelValues(phasePlace).Inc()

	key, index, ok := b.registry.Position(itemID)
	if !ok {
		return nil
	}
	return b.sync.CommitMove(MoveCommit{
		ItemID:  itemID,
		Key:     key,
		Index:   index,
		Before:  before,
		Version: b.registry.Version(),
	})
}

// Refresh refetches the item list.
func (b *Board) Refresh(ctx context.Context) error {
	return b.sync.Refresh(ctx)
}

// Sections returns a reorderer over the current sections of storeID.
func (b *Board) Sections(ctx context.Context, storeID int64) (*Reorderer, error) {
	sections, err := b.backend.ListSections(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return NewSectionReorderer(storeID, sections, b.backend, b.sched, b.notifier), nil
}
