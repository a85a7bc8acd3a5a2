package board

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/pantryhq/shoplist/internal/models"
)

// ContainerReader is the read side of the Registry used by collision detection.
type ContainerReader interface {
	Items(key ContainerKey) []int64
	ContainerOf(itemID int64) (ContainerKey, bool)
}

// Registry maps every container to the ordered item ids it currently holds.
//
// Reads are safe from any goroutine. Writes go through Mover only; every write
// bumps Version and notifies subscribers once the lock is released. Generation
// counts wholesale rebuilds from a fetched list.
type Registry struct {
	mu         sync.RWMutex
	order      []ContainerKey
	containers map[ContainerKey][]int64
	version    uint64
	generation uint64

	obsMu     sync.Mutex
	observers map[int]func()
	nextObs   int
}

// RegistrySnapshot is an immutable copy of the registry at a given version.
type RegistrySnapshot struct {
	order      []ContainerKey
	containers map[ContainerKey][]int64
	version    uint64
	generation uint64
}

func (s RegistrySnapshot) Version() uint64 {
	return s.version
}

func (s RegistrySnapshot) Generation() uint64 {
	return s.generation
}

func (s RegistrySnapshot) Items(key ContainerKey) []int64 {
	return append([]int64(nil), s.containers[key]...)
}

func (s RegistrySnapshot) Keys() []ContainerKey {
	return append([]ContainerKey(nil), s.order...)
}

func NewRegistry() *Registry {
	return &Registry{
		containers: map[ContainerKey][]int64{GlobalKey: {}},
		order:      []ContainerKey{GlobalKey},
		observers:  make(map[int]func()),
	}
}

// BuildRegistry partitions list into containers by each item's own store/section ids,
// keeping the backend order inside every container. Every store and section of the
// list gets a container, empty or not.
func BuildRegistry(list models.ItemList) *Registry {
	r := NewRegistry()
	r.order, r.containers = partition(list)
	return r
}

func partition(list models.ItemList) ([]ContainerKey, map[ContainerKey][]int64) {
	var order []ContainerKey
	containers := make(map[ContainerKey][]int64)

	add := func(key ContainerKey) {
		if _, ok := containers[key]; ok {
			return
		}
		containers[key] = []int64{}
		order = append(order, key)
	}

	add(GlobalKey)
	for _, store := range list.Stores {
		add(EncodeKey(&store.ID, nil))
		for _, section := range store.Sections {
			add(EncodeKey(&store.ID, &section.ID))
		}
	}

	seen := sets.New[int64]()
	for _, item := range list.All() {
		if seen.Has(item.ID) {
			zap.S().Named("board").Warnw("duplicate item in list, keeping first occurrence", "item_id", item.ID)
			continue
		}
		seen.Insert(item.ID)

		key := KeyOf(item)
		add(key)
		containers[key] = append(containers[key], item.ID)
	}

	return order, containers
}

// Keys returns every known container key.
func (r *Registry) Keys() sets.Set[ContainerKey] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sets.New(r.order...)
}

// OrderedKeys returns the container keys in display order.
func (r *Registry) OrderedKeys() []ContainerKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ContainerKey(nil), r.order...)
}

func (r *Registry) Has(key ContainerKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.containers[key]
	return ok
}

// Items returns a copy of the sequence held by key.
func (r *Registry) Items(key ContainerKey) []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]int64(nil), r.containers[key]...)
}

// ContainerOf returns the container currently holding itemID.
func (r *Registry) ContainerOf(itemID int64) (ContainerKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return findContainer(r.containers, itemID)
}

// Position returns the container and index of itemID.
func (r *Registry) Position(itemID int64) (ContainerKey, int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := findContainer(r.containers, itemID)
	if !ok {
		return "", -1, false
	}
	for i, id := range r.containers[key] {
		if id == itemID {
			return key, i, true
		}
	}
	return "", -1, false
}

func (r *Registry) Total() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, seq := range r.containers {
		total += len(seq)
	}
	return total
}

func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

func (r *Registry) Snapshot() RegistrySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return RegistrySnapshot{
		order:      append([]ContainerKey(nil), r.order...),
		containers: cloneContainers(r.containers),
		version:    r.version,
		generation: r.generation,
	}
}

// Verify checks that ids are exactly the items held, each in one container only.
func (r *Registry) Verify(ids sets.Set[int64]) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	held := sets.New[int64]()
	for _, key := range r.order {
		for _, id := range r.containers[key] {
			if held.Has(id) {
				return fmt.Errorf("item %d held twice", id)
			}
			held.Insert(id)
		}
	}
	if missing := ids.Difference(held); missing.Len() > 0 {
		return fmt.Errorf("items not held by any container: %v", sets.List(missing))
	}
	if extra := held.Difference(ids); extra.Len() > 0 {
		return fmt.Errorf("unknown items held: %v", sets.List(extra))
	}
	return nil
}

// Subscribe registers fn to run after every change. The returned func unsubscribes.
// fn runs outside the registry and controller locks, so it may read both.
func (r *Registry) Subscribe(fn func()) func() {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()

	id := r.nextObs
	r.nextObs++
	r.observers[id] = fn

	return func() {
		r.obsMu.Lock()
		defer r.obsMu.Unlock()
		delete(r.observers, id)
	}
}

func (r *Registry) notify() {
	r.obsMu.Lock()
	fns := make([]func(), 0, len(r.observers))
	for _, fn := range r.observers {
		fns = append(fns, fn)
	}
	r.obsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// update applies fn and notifies subscribers when it changed anything.
func (r *Registry) update(fn func(containers map[ContainerKey][]int64) bool) bool {
	changed := r.apply(fn)
	if changed {
		r.notify()
	}
	return changed
}

// apply runs fn under the write lock without notifying; the caller notifies
// once it holds no other lock. fn reports whether it changed anything.
func (r *Registry) apply(fn func(containers map[ContainerKey][]int64) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := fn(r.containers)
	if changed {
		r.version++
	}
	return changed
}

func (r *Registry) reset(order []ContainerKey, containers map[ContainerKey][]int64) {
	r.mu.Lock()
	r.order = order
	r.containers = containers
	r.version++
	r.generation++
	r.mu.Unlock()

	r.notify()
}

// restore swaps in snap if the registry is still at version expected and has
// not been rebuilt since snap was taken.
func (r *Registry) restore(snap RegistrySnapshot, expected uint64) bool {
	r.mu.Lock()
	if r.version != expected || r.generation != snap.generation {
		r.mu.Unlock()
		return false
	}
	r.order = append([]ContainerKey(nil), snap.order...)
	r.containers = cloneContainers(snap.containers)
	r.version++
	r.mu.Unlock()

	r.notify()
	return true
}

func findContainer(containers map[ContainerKey][]int64, itemID int64) (ContainerKey, bool) {
	for key, seq := range containers {
		for _, id := range seq {
			if id == itemID {
				return key, true
			}
		}
	}
	return "", false
}

func cloneContainers(in map[ContainerKey][]int64) map[ContainerKey][]int64 {
	out := make(map[ContainerKey][]int64, len(in))
	for key, seq := range in {
		out[key] = append([]int64{}, seq...)
	}
	return out
}
