package models

// ItemList is the grouped view of every unchecked item.
type ItemList struct {
	Unassigned []Item          `json:"unassigned"`
	Stores     []ItemListStore `json:"stores"`
}

type ItemListStore struct {
	Store
	Unassigned []Item            `json:"unassigned"`
	Sections   []ItemListSection `json:"sections"`
}

type ItemListSection struct {
	Section
	Items []Item `json:"items"`
}

// Total returns the number of items across all groups.
func (l ItemList) Total() int {
	total := len(l.Unassigned)
	for _, s := range l.Stores {
		total += len(s.Unassigned)
		for _, sec := range s.Sections {
			total += len(sec.Items)
		}
	}
	return total
}

// All flattens the list in display order: global unassigned, then per store its
// unassigned pool followed by its sections.
func (l ItemList) All() []Item {
	items := make([]Item, 0, l.Total())
	items = append(items, l.Unassigned...)
	for _, s := range l.Stores {
		items = append(items, s.Unassigned...)
		for _, sec := range s.Sections {
			items = append(items, sec.Items...)
		}
	}
	return items
}
