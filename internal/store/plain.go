package store

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/itemlist"
)

// InventoryPlain is the serialized form of an Inventory.
type InventoryPlain struct {
	InventoryID string         `json:"inventoryId"`
	Owner       string         `json:"owner"`
	Gold        int            `json:"gold"`
	Items       itemlist.Plain `json:"items"`
}

// StorePlain is the serialized form of a Store's mutable state. Multipliers
// and stocklists come from the YAML catalogs, not the snapshot.
type StorePlain struct {
	StoreID     string         `json:"storeId"`
	Name        string         `json:"name"`
	Stock       itemlist.Plain `json:"stock"`
	RestockTime int64          `json:"restockTime"`
}

// ToolboxPlain is the serialized form of a Toolbox.
type ToolboxPlain struct {
	Tools []item.ToolPlain `json:"tools"`
}

// ToPlain converts the inventory for persistence.
func (v *Inventory) ToPlain() InventoryPlain {
	return InventoryPlain{
		InventoryID: v.inventoryID,
		Owner:       v.owner,
		Gold:        v.gold,
		Items:       v.items.ToPlain(),
	}
}

// InventoryFromPlain rebuilds an inventory, clamping gold and dropping
// unresolvable stacks.
func InventoryFromPlain(cat *item.Catalog, p InventoryPlain) *Inventory {
	inv := NewInventory(cat, p.Owner, p.Gold, itemlist.FromPlain(cat, p.Items))
	if p.InventoryID != "" {
		inv.inventoryID = p.InventoryID
	}
	return inv
}

// ToPlain converts the store's mutable state for persistence.
func (s *Store) ToPlain() StorePlain {
	return StorePlain{
		StoreID:     s.storeID,
		Name:        s.name,
		Stock:       s.stock.ToPlain(),
		RestockTime: s.restockTime,
	}
}

// StoreFromPlain rebuilds a store from its definition plus a persisted
// snapshot of its mutable state.
func StoreFromPlain(cat *item.Catalog, def *StoreDef, list *StockList, p StorePlain) (*Store, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if err := list.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		storeID:           p.StoreID,
		id:                def.ID,
		name:              def.Name,
		buyMultiplier:     def.BuyMultiplier,
		sellMultiplier:    def.SellMultiplier,
		upgradeMultiplier: def.UpgradeMultiplier,
		cat:               cat,
		stock:             itemlist.FromPlain(cat, p.Stock),
		stockList:         list,
		restockTime:       p.RestockTime,
		restockInterval:   def.RestockInterval,
	}
	if s.storeID == "" {
		s.storeID = uuid.NewString()
	}
	return s, nil
}

// ToPlain converts the toolbox for persistence.
func (b *Toolbox) ToPlain() ToolboxPlain {
	p := ToolboxPlain{Tools: make([]item.ToolPlain, 0, len(b.tools))}
	for _, t := range b.tools {
		p.Tools = append(p.Tools, t.ToPlain())
	}
	return p
}

// ToolboxFromPlain rebuilds a toolbox, dropping tools that no longer
// resolve against the catalog.
func ToolboxFromPlain(cat *item.Catalog, p ToolboxPlain) *Toolbox {
	b := NewToolbox()
	for _, tp := range p.Tools {
		t := cat.ToolByID(tp.ID)
		if t == nil {
			t = cat.ToolByName(tp.Name)
		}
		if t == nil {
			slog.Error("dropping unresolvable tool", "name", tp.Name)
			continue
		}
		b.AddTool(t)
	}
	return b
}
