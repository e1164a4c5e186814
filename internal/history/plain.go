package history

import (
	"log/slog"

	"github.com/lo-maxwell/virtual-garden/internal/item"
)

// ItemHistoryPlain is the serialized form of an ItemHistory.
type ItemHistoryPlain struct {
	Template item.TemplatePlain `json:"itemData"`
	Quantity int                `json:"quantity"`
}

// ActionHistoryPlain is the serialized form of an ActionHistory.
type ActionHistoryPlain struct {
	Identifier string `json:"identifier"`
	Count      int    `json:"count"`
}

// Plain is the serialized form of a HistoryList.
type Plain struct {
	Items   []ItemHistoryPlain   `json:"items"`
	Actions []ActionHistoryPlain `json:"actions"`
}

// ToPlain converts the list for persistence.
func (l *HistoryList) ToPlain() Plain {
	p := Plain{}
	for _, h := range l.ItemHistories() {
		p.Items = append(p.Items, ItemHistoryPlain{Template: h.template.ToPlain(), Quantity: h.quantity})
	}
	for _, h := range l.ActionHistories() {
		p.Actions = append(p.Actions, ActionHistoryPlain{Identifier: h.identifier, Count: h.count})
	}
	return p
}

// FromPlain rebuilds a history list, dropping entries whose templates no
// longer resolve.
func FromPlain(cat *item.Catalog, p Plain) *HistoryList {
	l := NewHistoryList()
	for _, hp := range p.Items {
		t := cat.ByID(hp.Template.ID)
		if t.IsError() {
			t = cat.InventoryByName(hp.Template.Name)
		}
		if t.IsError() {
			t = cat.PlacedByName(hp.Template.Name)
		}
		if t.IsError() {
			slog.Error("dropping history for unresolvable item", "name", hp.Template.Name)
			continue
		}
		if hp.Quantity <= 0 {
			continue
		}
		l.items[t.ID] = NewItemHistory(t, hp.Quantity)
	}
	for _, ap := range p.Actions {
		if ap.Identifier == "" || ap.Count <= 0 {
			continue
		}
		l.RecordAction(ap.Identifier, ap.Count)
	}
	return l
}
