package board

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/pantryhq/shoplist/pkg/errors"
	"github.com/pantryhq/shoplist/pkg/scheduler"
)

// DefaultCheckDelay is how long a checked item waits before the check is committed.
const DefaultCheckDelay = 1500 * time.Millisecond

type pendingCheck struct {
	timer *time.Timer
}

// Checker delays check commits so an accidental check can be undone.
type Checker struct {
	mu      sync.Mutex
	pending map[int64]*pendingCheck

	delay    time.Duration
	backend  Backend
	sched    *scheduler.Scheduler
	sync     *Synchronizer
	notifier Notifier
}

func NewChecker(backend Backend, sched *scheduler.Scheduler, sync *Synchronizer, delay time.Duration, notifier Notifier) *Checker {
	if delay <= 0 {
		delay = DefaultCheckDelay
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Checker{
		pending:  make(map[int64]*pendingCheck),
		delay:    delay,
		backend:  backend,
		sched:    sched,
		sync:     sync,
		notifier: notifier,
	}
}

// Check starts the delay for id. It returns false if id is already pending.
func (c *Checker) Check(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[id]; ok {
		return false
	}
	p := &pendingCheck{}
	p.timer = time.AfterFunc(c.delay, func() { c.fire(id, p) })
	c.pending[id] = p
	return true
}

// Uncheck cancels a pending check. It returns false when there was nothing to cancel.
func (c *Checker) Uncheck(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pending[id]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(c.pending, id)
	return true
}

func (c *Checker) IsChecked(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[id]
	return ok
}

// Flush commits every pending check now and waits for the results.
func (c *Checker) Flush(ctx context.Context) error {
	c.mu.Lock()
	ids := make([]int64, 0, len(c.pending))
	for id, p := range c.pending {
		p.timer.Stop()
		ids = append(ids, id)
	}
	c.pending = make(map[int64]*pendingCheck)
	c.mu.Unlock()

	var errs []error
	for _, id := range ids {
		result, err := c.commit(id).Wait(ctx)
		if err != nil {
			return err
		}
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}
	return errors.Join(errs...)
}

func (c *Checker) fire(id int64, p *pendingCheck) {
	c.mu.Lock()
	if c.pending[id] != p {
		c.mu.Unlock()
		return
	}
	delete(c.pending, id)
	c.mu.Unlock()

	c.commit(id)
}

func (c *Checker) commit(id int64) *scheduler.Future[scheduler.Result[any]] {
	return c.sched.AddWork(func(ctx context.Context) (any, error) {
		if err := c.backend.CheckItem(ctx, id); err != nil {
			commitsTotal.WithLabelValues(kindCheck, resultFailure).Inc()
			err = srvErrors.NewCommitError(kindCheck, err)
			c.notifier.Notify(err)
			return nil, err
		}
		commitsTotal.WithLabelValues(kindCheck, resultSuccess).Inc()
		zap.S().Named("board").Debugw("item checked", "item_id", id)

		if c.sync == nil {
			return nil, nil
		}
		return nil, c.sync.Refresh(ctx)
	})
}
