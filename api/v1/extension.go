package v1

import (
	"github.com/pantryhq/shoplist/internal/models"
)

// NewItemFromModel converts a models.Item to an API Item.
func NewItemFromModel(m models.Item) Item {
	return Item{
		Id:        m.ID,
		StoreId:   m.StoreID,
		SectionId: m.SectionID,
		Name:      m.Name,
		Checked:   m.Checked,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (i Item) ToModel() models.Item {
	return models.Item{
		ID:        i.Id,
		StoreID:   i.StoreId,
		SectionID: i.SectionId,
		Name:      i.Name,
		Checked:   i.Checked,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func NewItemsFromModel(items []models.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, i := range items {
		out = append(out, NewItemFromModel(i))
	}
	return out
}

func itemsToModel(items []Item) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, i := range items {
		out = append(out, i.ToModel())
	}
	return out
}

func NewStoreFromModel(m models.Store) Store {
	return Store{Id: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func NewStoresFromModel(stores []models.Store) []Store {
	out := make([]Store, 0, len(stores))
	for _, s := range stores {
		out = append(out, NewStoreFromModel(s))
	}
	return out
}

func (s Store) ToModel() models.Store {
	return models.Store{ID: s.Id, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func NewSectionFromModel(m models.Section) Section {
	return Section{Id: m.ID, StoreId: m.StoreID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func NewSectionsFromModel(sections []models.Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, NewSectionFromModel(s))
	}
	return out
}

func (s Section) ToModel() models.Section {
	return models.Section{ID: s.Id, StoreID: s.StoreId, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

// NewItemListFromModel converts the grouped list, keeping every slice non nil.
func NewItemListFromModel(m models.ItemList) ItemList {
	list := ItemList{
		Unassigned: NewItemsFromModel(m.Unassigned),
		Stores:     make([]ItemListStore, 0, len(m.Stores)),
	}
	for _, s := range m.Stores {
		ls := ItemListStore{
			Store:      NewStoreFromModel(s.Store),
			Unassigned: NewItemsFromModel(s.Unassigned),
			Sections:   make([]ItemListSection, 0, len(s.Sections)),
		}
		for _, sec := range s.Sections {
			ls.Sections = append(ls.Sections, ItemListSection{
				Section: NewSectionFromModel(sec.Section),
				Items:   NewItemsFromModel(sec.Items),
			})
		}
		list.Stores = append(list.Stores, ls)
	}
	return list
}

func (l ItemList) ToModel() models.ItemList {
	list := models.ItemList{
		Unassigned: itemsToModel(l.Unassigned),
		Stores:     make([]models.ItemListStore, 0, len(l.Stores)),
	}
	for _, s := range l.Stores {
		ls := models.ItemListStore{
			Store:      s.Store.ToModel(),
			Unassigned: itemsToModel(s.Unassigned),
			Sections:   make([]models.ItemListSection, 0, len(s.Sections)),
		}
		for _, sec := range s.Sections {
			ls.Sections = append(ls.Sections, models.ItemListSection{
				Section: sec.Section.ToModel(),
				Items:   itemsToModel(sec.Items),
			})
		}
		list.Stores = append(list.Stores, ls)
	}
	return list
}

func (r CreateItemRequest) ToModel() models.CreateItemRequest {
	return models.CreateItemRequest{StoreID: r.StoreId, SectionID: r.SectionId, Name: r.Name}
}

func (r MoveItemRequest) ToModel() models.MoveItemRequest {
	return models.MoveItemRequest{StoreID: r.StoreId, SectionID: r.SectionId, Index: r.Index}
}

func NewMoveItemRequest(m models.MoveItemRequest) MoveItemRequest {
	return MoveItemRequest{StoreId: m.StoreID, SectionId: m.SectionID, Index: m.Index}
}
