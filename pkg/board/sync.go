package board

import (
	"context"

	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/models"
	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
	"github.com/pantryhq/shoplist/pkg/scheduler"
)

// Synchronizer commits cross-container moves and reconciles the registry with
// the backend. The drag-time registry mutation is the optimistic update.
type Synchronizer struct {
	backend  Backend
	sched    *scheduler.Scheduler
	mover    *Mover
	index    *ItemIndex
	notifier Notifier
	rollback bool
}

func NewSynchronizer(backend Backend, sched *scheduler.Scheduler, mover *Mover, index *ItemIndex, notifier Notifier, rollback bool) *Synchronizer {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Synchronizer{
		backend:  backend,
		sched:    sched,
		mover:    mover,
		index:    index,
		notifier: notifier,
		rollback: rollback,
	}
}

// CommitMove issues one move request for c on the scheduler.
func (s *Synchronizer) CommitMove(c MoveCommit) *scheduler.Future[scheduler.Result[any]] {
	placement := DecodeKey(c.Key)
	req := models.MoveItemRequest{
		StoreID:   placement.StoreID,
		SectionID: placement.SectionID,
		Index:     c.Index,
	}

	return s.sched.AddWork(func(ctx context.Context) (any, error) {
		log := zap.S().Named("board").With("item_id", c.ItemID, "container", string(c.Key), "index", c.Index)

		if err := s.backend.MoveItem(ctx, c.ItemID, req); err != nil {
			commitsTotal.WithLabelValues(kindMove, resultFailure).Inc()
			log.Warnw("move commit failed", "error", err)

			err = srvErrors.NewCommitError(kindMove, err)
			s.notifier.Notify(err)

			if s.rollback {
				if s.mover.Restore(c.Before, c.Version) {
					rollbacksTotal.WithLabelValues(kindMove).Inc()
					log.Info("registry rolled back to pre-drag state")
				} else {
					log.Debug("registry changed or was rebuilt since the drag started, rollback skipped")
				}
			}
			if rerr := s.Refresh(ctx); rerr != nil {
				log.Warnw("refresh after failed commit", "error", rerr)
			}
			return nil, err
		}

		commitsTotal.WithLabelValues(kindMove, resultSuccess).Inc()
		log.Debug("move committed")
		return nil, s.Refresh(ctx)
	})
}

// Refresh refetches the item list and rebuilds the index and the registry from it.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	list, err := s.backend.ListItems(ctx)
	if err != nil {
		return err
	}
	s.index.rebuild(*list)
	s.mover.Rebuild(*list)
	return nil
}
