package board

import (
	"sync"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/pantryhq/shoplist/internal/models"
)

// ItemIndex is a lookup from item id to the full item record.
// It is rebuilt whenever the item list is fetched again.
type ItemIndex struct {
	mu    sync.RWMutex
	items map[int64]models.Item
}

func NewItemIndex(list models.ItemList) *ItemIndex {
	idx := &ItemIndex{}
	idx.rebuild(list)
	return idx
}

func (i *ItemIndex) Get(id int64) (models.Item, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	item, ok := i.items[id]
	return item, ok
}

func (i *ItemIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.items)
}

func (i *ItemIndex) IDs() sets.Set[int64] {
	i.mu.RLock()
	defer i.mu.RUnlock()
	ids := sets.New[int64]()
	for id := range i.items {
		ids.Insert(id)
	}
	return ids
}

func (i *ItemIndex) rebuild(list models.ItemList) {
	items := make(map[int64]models.Item, list.Total())
	for _, item := range list.All() {
		if _, ok := items[item.ID]; ok {
			continue
		}
		items[item.ID] = item
	}

	i.mu.Lock()
	i.items = items
	i.mu.Unlock()
}
