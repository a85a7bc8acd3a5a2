package board

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/util"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
	"github.com/pantryhq/shoplist/pkg/scheduler"
)

// Sequence is a single ordered container, e.g. the sections of one store.
type Sequence struct {
	mu        sync.RWMutex
	ids       []int64
	observers []func([]int64)
}

func NewSequence(ids []int64) *Sequence {
	return &Sequence{ids: append([]int64{}, ids...)}
}

func (s *Sequence) IDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64{}, s.ids...)
}

// Subscribe registers fn to receive every new order.
func (s *Sequence) Subscribe(fn func([]int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Sequence) set(ids []int64) {
	s.mu.Lock()
	s.ids = append([]int64{}, ids...)
	observers := append([]func([]int64){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(append([]int64{}, ids...))
	}
}

type ReorderCommitFunc func(ctx context.Context, ids []int64) error

type RefreshFunc func(ctx context.Context) ([]int64, error)

// Reorderer applies a new order optimistically, commits it, and restores the
// pre-commit snapshot verbatim if the commit fails.
type Reorderer struct {
	seq      *Sequence
	sched    *scheduler.Scheduler
	commit   ReorderCommitFunc
	refresh  RefreshFunc
	notifier Notifier
}

func NewReorderer(seq *Sequence, sched *scheduler.Scheduler, commit ReorderCommitFunc, refresh RefreshFunc, notifier Notifier) *Reorderer {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Reorderer{
		seq:      seq,
		sched:    sched,
		commit:   commit,
		refresh:  refresh,
		notifier: notifier,
	}
}

// NewSectionReorderer builds a Reorderer over the sections of storeID.
func NewSectionReorderer(storeID int64, sections []models.Section, backend Backend, sched *scheduler.Scheduler, notifier Notifier) *Reorderer {
	ids := make([]int64, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}

	commit := func(ctx context.Context, ids []int64) error {
		return backend.ReorderSections(ctx, storeID, ids)
	}
	refresh := func(ctx context.Context) ([]int64, error) {
		sections, err := backend.ListSections(ctx, storeID)
		if err != nil {
			return nil, err
		}
		ids := make([]int64, 0, len(sections))
		for _, s := range sections {
			ids = append(ids, s.ID)
		}
		return ids, nil
	}

	return NewReorderer(NewSequence(ids), sched, commit, refresh, notifier)
}

func (r *Reorderer) Sequence() *Sequence {
	return r.seq
}

// Reorder moves the element at from to to.
func (r *Reorderer) Reorder(from, to int) (*scheduler.Future[scheduler.Result[any]], error) {
	current := r.seq.IDs()
	if from < 0 || from >= len(current) || to < 0 || to >= len(current) {
		return nil, srvErrors.NewValidationError("reorder %d -> %d out of range [0, %d)", from, to, len(current))
	}
	if from == to {
		return scheduler.Resolved(scheduler.Result[any]{}), nil
	}
	return r.apply(current, util.Move(current, from, to)), nil
}

// ReorderTo replaces the order with ids, which must hold the same elements.
func (r *Reorderer) ReorderTo(ids []int64) (*scheduler.Future[scheduler.Result[any]], error) {
	current := r.seq.IDs()
	if len(ids) != len(current) || !sets.New(ids...).Equal(sets.New(current...)) {
		return nil, srvErrors.NewValidationError("new order must contain exactly the current elements")
	}
	return r.apply(current, ids), nil
}

func (r *Reorderer) apply(snapshot, next []int64) *scheduler.Future[scheduler.Result[any]] {
	r.seq.set(next)

	return r.sched.AddWork(func(ctx context.Context) (any, error) {
		log := zap.S().Named("board").With("order", next)

		if err := r.commit(ctx, next); err != nil {
			commitsTotal.WithLabelValues(kindReorder, resultFailure).Inc()
			r.seq.set(snapshot)
			rollbacksTotal.WithLabelValues(kindReorder).Inc()
			log.Warnw("reorder commit failed, order restored", "error", err)

			err = srvErrors.NewCommitError(kindReorder, err)
			r.notifier.Notify(err)
			return nil, err
		}
		commitsTotal.WithLabelValues(kindReorder, resultSuccess).Inc()

		if r.refresh == nil {
			return nil, nil
		}
		ids, err := r.refresh(ctx)
		if err != nil {
			log.Warnw("refresh after reorder", "error", err)
			return nil, nil
		}
		r.seq.set(ids)
		return nil, nil
	})
}
