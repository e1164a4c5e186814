// Package store implements the economy: player inventories, gold, shops
// with multipliers and restocking, and the tool box.
package store

import (
	"github.com/google/uuid"

	"github.com/lo-maxwell/virtual-garden/internal/item"
	"github.com/lo-maxwell/virtual-garden/internal/itemlist"
	"github.com/lo-maxwell/virtual-garden/internal/result"
)

// Inventory is a player's gold purse plus their item stacks.
type Inventory struct {
	inventoryID string
	owner       string
	cat         *item.Catalog
	gold        int
	items       *itemlist.ItemList
}

// NewInventory builds an inventory. Negative starting gold clamps to zero.
func NewInventory(cat *item.Catalog, owner string, gold int, items *itemlist.ItemList) *Inventory {
	if gold < 0 {
		gold = 0
	}
	if items == nil {
		items = itemlist.New()
	}
	return &Inventory{
		inventoryID: uuid.NewString(),
		owner:       owner,
		cat:         cat,
		gold:        gold,
		items:       items,
	}
}

// ID returns the inventory's identifier.
func (v *Inventory) ID() string { return v.inventoryID }

// Owner returns the owning account's name.
func (v *Inventory) Owner() string { return v.owner }

// Gold returns the current gold balance.
func (v *Inventory) Gold() int { return v.gold }

// Items returns the backing item list.
func (v *Inventory) Items() *itemlist.ItemList { return v.items }

// AddGold credits a positive amount of gold.
func (v *Inventory) AddGold(amount int) *result.Result[int] {
	if amount <= 0 {
		return result.Failf[int]("invalid gold amount: %d", amount)
	}
	v.gold += amount
	return result.Ok(v.gold)
}

// RemoveGold debits a positive amount of gold, clamping the balance at
// zero.
func (v *Inventory) RemoveGold(amount int) *result.Result[int] {
	if amount <= 0 {
		return result.Failf[int]("invalid gold amount: %d", amount)
	}
	v.gold -= amount
	if v.gold < 0 {
		v.gold = 0
	}
	return result.Ok(v.gold)
}

// resolveTemplate turns an item reference into an inventory-kind template.
func (v *Inventory) resolveTemplate(ref any) *result.Result[*item.Template] {
	var t *item.Template
	switch r := ref.(type) {
	case *item.Template:
		t = r
	case *item.InventoryItem:
		t = r.Template()
	case string:
		t = v.cat.InventoryByName(r)
	default:
		return result.Failf[*item.Template]("could not parse item reference %v", ref)
	}
	if t.IsError() {
		return result.Fail[*item.Template]("item not found")
	}
	if t.Kind != item.KindInventory {
		return result.Failf[*item.Template]("item is of type %s, cannot be held in an inventory", t.Kind)
	}
	return result.Ok(t)
}

// BuyItem purchases quantity units at the template value scaled by
// multiplier. The items land first, then the gold is deducted; the gold
// check up front keeps the two phases consistent.
func (v *Inventory) BuyItem(ref any, multiplier float64, quantity int) *result.Result[*item.InventoryItem] {
	if quantity <= 0 {
		return result.Failf[*item.InventoryItem]("invalid quantity: %d", quantity)
	}
	tmpl := v.resolveTemplate(ref)
	if !tmpl.Success() {
		return result.Fail[*item.InventoryItem](tmpl.Messages...)
	}

	cost := tmpl.Payload.Price(multiplier) * quantity
	if cost > v.gold {
		return result.Failf[*item.InventoryItem]("not enough gold: need %d, have %d", cost, v.gold)
	}

	added := v.items.AddItem(tmpl.Payload, quantity)
	if !added.Success() {
		return added
	}
	if debit := v.RemoveGold(cost); !debit.Success() {
		// The add already landed; the failure envelope still carries it.
		res := result.Ok(added.Payload)
		res.AddErrors(debit.Messages)
		return res
	}
	return added
}

// SellItem sells quantity units at the template value scaled by multiplier,
// removing the items and then crediting the gold.
func (v *Inventory) SellItem(ref any, multiplier float64, quantity int) *result.Result[*item.InventoryItem] {
	if quantity <= 0 {
		return result.Failf[*item.InventoryItem]("invalid quantity: %d", quantity)
	}
	tmpl := v.resolveTemplate(ref)
	if !tmpl.Success() {
		return result.Fail[*item.InventoryItem](tmpl.Messages...)
	}

	held := v.items.ContainsAmount(tmpl.Payload, quantity)
	if !held.Success() || !held.Payload {
		return result.Failf[*item.InventoryItem]("not enough %s to sell", tmpl.Payload.Name)
	}

	removed := v.items.UpdateQuantity(tmpl.Payload, -quantity)
	if !removed.Success() {
		return removed
	}
	v.gold += tmpl.Payload.Price(multiplier) * quantity
	return removed
}

// GainItem adds quantity units without payment.
func (v *Inventory) GainItem(ref any, quantity int) *result.Result[*item.InventoryItem] {
	return v.items.AddItem(ref, quantity)
}

// TrashItem discards quantity units without compensation.
func (v *Inventory) TrashItem(ref any, quantity int) *result.Result[*item.InventoryItem] {
	if quantity <= 0 {
		return result.Failf[*item.InventoryItem]("invalid quantity: %d", quantity)
	}
	held := v.items.ContainsAmount(ref, quantity)
	if !held.Success() || !held.Payload {
		return result.Fail[*item.InventoryItem]("not enough items to trash")
	}
	return v.items.UpdateQuantity(ref, -quantity)
}

// UseItem consumes quantity units through the item's transform, dropping
// drained stacks.
func (v *Inventory) UseItem(ref any, quantity int) *result.Result[item.UseOutcome] {
	return v.items.UseItem(v.cat, ref, quantity)
}
