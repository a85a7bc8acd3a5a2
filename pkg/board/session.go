package board

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/pkg/scheduler"
)

// State is the drag session controller state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	case StateCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

var ErrDragInProgress = errors.New("a drag is already in progress")

// Session is the transient record of one drag gesture.
type Session struct {
	ID        uuid.UUID
	ItemID    int64
	Source    ContainerKey
	Target    *Target
	StartedAt time.Time

	before RegistrySnapshot
}

type DragStartEvent struct {
	ItemID int64
}

// DragEvent carries the geometry of one drag-over or drop frame.
type DragEvent struct {
	Dragged    Draggable
	Droppables []Droppable
}

// MoveCommit is the final placement handed to the synchronizer on drop.
type MoveCommit struct {
	SessionID uuid.UUID
	ItemID    int64
	Key       ContainerKey
	Index     int

	// registry before the drag started, and its version right after the drop
	Before  RegistrySnapshot
	Version uint64
}

type Committer interface {
	CommitMove(c MoveCommit) *scheduler.Future[scheduler.Result[any]]
}

type ControllerOption func(*Controller)

func WithDetector(fn DetectFunc) ControllerOption {
	return func(c *Controller) {
		c.detect = fn
	}
}

// WithTransitionHook registers fn to observe every state change.
// fn runs with the controller locked and must not call back into it.
func WithTransitionHook(fn func(from, to State)) ControllerOption {
	return func(c *Controller) {
		c.hooks = append(c.hooks, fn)
	}
}

// Controller coordinates drag start, drag over and drop.
// Events are serialized; none of them performs I/O. Registry subscribers are
// notified after the controller lock is released.
type Controller struct {
	mu        sync.Mutex
	state     State
	session   *Session
	index     *ItemIndex
	registry  *Registry
	mover     *Mover
	committer Committer
	detect    DetectFunc
	hooks     []func(from, to State)
}

func NewController(index *ItemIndex, registry *Registry, mover *Mover, committer Committer, opts ...ControllerOption) *Controller {
	c := &Controller{
		state:     StateIdle,
		index:     index,
		registry:  registry,
		mover:     mover,
		committer: committer,
		detect:    DetectCollision,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a copy of the active session.
func (c *Controller) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// DragStart captures the dragged item.
func (c *Controller) DragStart(ev DragStartEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return ErrDragInProgress
	}
	if _, ok := c.index.Get(ev.ItemID); !ok {
		return fmt.Errorf("drag start: unknown item %d", ev.ItemID)
	}
	source, ok := c.registry.ContainerOf(ev.ItemID)
	if !ok {
		return fmt.Errorf("drag start: item %d is not in any container", ev.ItemID)
	}

	c.session = &Session{
		ID:        uuid.New(),
		ItemID:    ev.ItemID,
		Source:    source,
		StartedAt: time.Now(),
		before:    c.registry.Snapshot(),
	}
	c.transition(StateDragging)

	zap.S().Named("board").Debugw("drag started", "session", c.session.ID, "item_id", ev.ItemID, "source", string(source))
	return nil
}

// DragOver moves the item across containers while the pointer travels.
// Same container reordering is left to the drop.
func (c *Controller) DragOver(ev DragEvent) bool {
	moved := c.dragOver(ev)
	if moved {
		c.registry.notify()
	}
	return moved
}

func (c *Controller) dragOver(ev DragEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDragging {
		zap.S().Named("board").Debugw("drag over ignored", "state", c.state.String())
		return false
	}

	ev.Dragged.Item = c.session.ItemID
	target, ok := c.detect(ev.Dragged, ev.Droppables, c.registry)
	if !ok {
		return false
	}
	c.session.Target = &target

	moved := c.mover.move(c.session.ItemID, target, true)
	if moved {
		movesTotal.WithLabelValues(phaseOver).Inc()
	}
	return moved
}

// DragEnd forces the final placement and hands it to the committer.
// It returns nil when the item was dropped outside every container.
func (c *Controller) DragEnd(ev DragEvent) *scheduler.Future[scheduler.Result[any]] {
	future, moved := c.dragEnd(ev)
	if moved {
		c.registry.notify()
	}
	return future
}

func (c *Controller) dragEnd(ev DragEvent) (future *scheduler.Future[scheduler.Result[any]], moved bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDragging {
		zap.S().Named("board").Debugw("drag end ignored", "state", c.state.String())
		return nil, false
	}
	session := c.session
	log := zap.S().Named("board").With("session", session.ID, "item_id", session.ItemID)

	ev.Dragged.Item = session.ItemID
	target, ok := c.detect(ev.Dragged, ev.Droppables, c.registry)
	if !ok {
		c.transition(StateCancelled)
		dragsTotal.WithLabelValues("cancelled").Inc()
		log.Debug("drag cancelled, dropped outside every container")
		c.finish()
		return nil, false
	}

	if moved = c.mover.move(session.ItemID, target, false); moved {
		movesTotal.WithLabelValues(phaseDrop).Inc()
	}

	key, index, ok := c.registry.Position(session.ItemID)
	if !ok {
		// the list was refetched mid drag and the item is gone
		c.transition(StateCancelled)
		dragsTotal.WithLabelValues("cancelled").Inc()
		log.Warn("dragged item disappeared from registry")
		c.finish()
		return nil, moved
	}

	c.transition(StateCommitting)
	dragsTotal.WithLabelValues("committed").Inc()
	log.Debugw("drag committed", "container", string(key), "index", index)

	future = c.committer.CommitMove(MoveCommit{
		SessionID: session.ID,
		ItemID:    session.ItemID,
		Key:       key,
		Index:     index,
		Before:    session.before,
		Version:   c.registry.Version(),
	})
	c.finish()
	return future, moved
}

func (c *Controller) finish() {
	c.session = nil
	c.transition(StateIdle)
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	for _, hook := range c.hooks {
		hook(from, to)
	}
}
