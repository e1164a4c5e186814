package itemlist

import (
	"log/slog"

	"github.com/lo-maxwell/virtual-garden/internal/item"
)

// Plain is the serialized form of an ItemList.
type Plain struct {
	Items []item.InventoryItemPlain `json:"items"`
}

// ToPlain converts the list for persistence.
func (l *ItemList) ToPlain() Plain {
	p := Plain{Items: make([]item.InventoryItemPlain, 0, len(l.items))}
	for _, it := range l.items {
		p.Items = append(p.Items, it.ToPlain())
	}
	return p
}

// FromPlain rebuilds a list, skipping stacks whose templates no longer
// resolve against the catalog.
func FromPlain(cat *item.Catalog, p Plain) *ItemList {
	l := &ItemList{}
	for _, ip := range p.Items {
		it := item.InventoryItemFromPlain(cat, ip)
		if it.Template().IsError() {
			slog.Error("dropping unresolvable item stack", "name", ip.Template.Name)
			continue
		}
		if it.Quantity() <= 0 {
			continue
		}
		l.items = append(l.items, it)
	}
	l.sort()
	return l
}
