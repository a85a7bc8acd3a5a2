package board

import (
	"slices"

	"go.uber.org/zap"

	"github.com/pantryhq/shoplist/internal/models"
	"github.com/pantryhq/shoplist/internal/util"
)

// Mover is the only writer of a Registry.
type Mover struct {
	registry *Registry
}

func NewMover(r *Registry) *Mover {
	return &Mover{registry: r}
}

// Move relocates draggedID to target in one atomic registry update.
//
// With onlyIfContainerChanges set nothing happens when the item already lives in
// the target container. Otherwise the item is inserted at the target item's
// position (taken before removal) or appended when the target is a container or
// the target item is not found. Move reports whether the registry changed.
func (m *Mover) Move(draggedID int64, target Target, onlyIfContainerChanges bool) bool {
	moved := m.move(draggedID, target, onlyIfContainerChanges)
	if moved {
		m.registry.notify()
	}
	return moved
}

// move is Move without notifying subscribers.
func (m *Mover) move(draggedID int64, target Target, onlyIfContainerChanges bool) bool {
	return m.registry.apply(func(containers map[ContainerKey][]int64) bool {
		source, ok := findContainer(containers, draggedID)
		if !ok {
			zap.S().Named("board").Debugw("dragged item not in registry", "item_id", draggedID)
			return false
		}

		dest := target.Container
		if target.Kind == TargetItem {
			if key, ok := findContainer(containers, target.Item); ok {
				dest = key
			}
		}
		seq, ok := containers[dest]
		if !ok {
			zap.S().Named("board").Warnw("move to unknown container ignored", "item_id", draggedID, "container", string(dest))
			return false
		}

		if onlyIfContainerChanges && source == dest {
			return false
		}

		index := len(seq)
		if target.Kind == TargetItem {
			if i := util.IndexOf(seq, target.Item); i >= 0 {
				index = i
			}
		}

		return relocate(containers, draggedID, source, dest, index)
	})
}

// MoveToIndex places itemID at index of key, index counted after the item is removed.
func (m *Mover) MoveToIndex(itemID int64, key ContainerKey, index int) bool {
	return m.registry.update(func(containers map[ContainerKey][]int64) bool {
		source, ok := findContainer(containers, itemID)
		if !ok {
			return false
		}
		if _, ok := containers[key]; !ok {
			return false
		}
		return relocate(containers, itemID, source, key, index)
	})
}

// Rebuild replaces the registry content with a fresh partition of list.
func (m *Mover) Rebuild(list models.ItemList) {
	order, containers := partition(list)
	m.registry.reset(order, containers)
}

// Restore rolls the registry back to snap if it is still at version expected
// and no rebuild happened since snap was taken.
func (m *Mover) Restore(snap RegistrySnapshot, expected uint64) bool {
	return m.registry.restore(snap, expected)
}

func relocate(containers map[ContainerKey][]int64, id int64, source, dest ContainerKey, index int) bool {
	before := containers[dest]
	removed := util.Remove(containers[source], id)
	if source == dest {
		next := util.InsertAt(removed, index, id)
		if slices.Equal(next, before) {
			return false
		}
		containers[dest] = next
		return true
	}
	containers[source] = removed
	containers[dest] = util.InsertAt(before, index, id)
	return true
}
